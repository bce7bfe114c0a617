// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads page requests from query strings and describes
// the page returned next to the items.
//
//	params := pagination.FromRequest(r) // ?page=2&limit=10
//	meta := params.Meta(total)
//	if meta.IsEmpty() { /* skip the row query */ }
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	DefaultPage  = 1
)

// Params is a 1-based page request.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the page against total matching rows.
func (p Params) Meta(total int) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}

	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    p.Page < pages,
	}
}

// Meta is returned under "page" in list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// IsEmpty reports whether the page lies beyond the last row.
func (m Meta) IsEmpty() bool {
	return m.Total == 0 || m.Page > m.TotalPages
}

// FromRequest parses "page" and "limit". Out-of-range or malformed values
// fall back to [DefaultPage] and [DefaultLimit].
func FromRequest(r *http.Request) Params {
	return FromQuery(r.URL.Query())
}

// FromQuery is [FromRequest] over already parsed values.
func FromQuery(query url.Values) Params {
	page := intOr(query.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := intOr(query.Get("limit"), DefaultLimit)
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
