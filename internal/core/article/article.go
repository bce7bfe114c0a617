// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article manages blog articles and the RSS feed built from them.

An article belongs to a category, points at its current body through a
content id (see package text) and optionally at a cover image (see package
attachment). Its publish time controls visibility: an article whose
publish_at lies in the future is hidden from anonymous readers and from
roles below contributor, and never appears in the feed.
*/
package article

import (
	"time"

	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Core Entities

// Article is a published or scheduled post.
//
// UserName is a snapshot of the author's display name taken at creation.
// It is stored with the article and intentionally not kept in sync with
// later changes to the user.
type Article struct {
	ID          string    `json:"id"` // UUIDv7
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	CategoryID  string    `json:"category_id"`
	CoverID     string    `json:"cover_id"`
	ContentID   string    `json:"content_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"`
	PublishAt   int64     `json:"publish_at"` // epoch milliseconds
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Content is joined from the current text revision on reads.
	Content string `json:"content,omitempty"`
}

// IsPublishedAt reports whether the article is visible to everyone at now.
func (a *Article) IsPublishedAt(now time.Time) bool {
	return a.PublishAt <= now.UnixMilli()
}

// # Inputs

// CreateInput is the payload of a create request.
type CreateInput struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Tags        string `json:"tags"`
	// PublishAt defaults to the creation time.
	PublishAt *int64 `json:"publish_at"`
	// Image is an optional base64-encoded cover.
	Image string `json:"image"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	CategoryID  *string `json:"category_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Tags        *string `json:"tags"`
	PublishAt   *int64  `json:"publish_at"`
	Image       *string `json:"image"`
}

// Page is one page of an article listing.
type Page struct {
	Page     pagination.Meta `json:"page"`
	Articles []*Article      `json:"articles"`
}

// Filter narrows listings.
type Filter struct {
	// PublishedBefore keeps articles with publish_at strictly below it (epoch ms).
	PublishedBefore *int64
	CategoryID      string
}

// # Field Identifiers

const (
	FieldCategoryID  = "category_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldTags        = "tags"
	FieldImage       = "image"
	FieldPublishAt   = "publish_at"
)

// Length limits.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
	MaxTagsLength        = 1000
)

// FormatHTML asks reads to render content as HTML.
const FormatHTML = "html"
