// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category manages article categories and their presentation order.

Categories form an ordered list: a new category is appended after the
current maximum display order, and the whole list can be rewritten at once
by submitting a permutation of every category id. A category that is still
referenced by an article cannot be deleted.
*/
package category

import (
	"encoding/json"
	"time"
)

// # Core Entities

// Category groups articles under a named heading.
type Category struct {
	ID           string    `json:"id"` // UUIDv7
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Inputs

// CreateInput is the payload of a create request.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SortInput carries the requested order of every category id.
type SortInput struct {
	IDs IDList `json:"id"`
}

// IDList is a list of ids that also accepts a single bare string.
type IDList []string

// UnmarshalJSON accepts both ["a","b"] and "a".
func (list *IDList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*list = IDList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*list = many
	return nil
}

// OrderChange moves one category to a new display order.
type OrderChange struct {
	ID           string
	DisplayOrder int
}

// # Field Identifiers

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
)

// Length limits.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)
