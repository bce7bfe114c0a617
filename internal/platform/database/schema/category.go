// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the Postgres
// repositories, so SQL strings are assembled from one source of truth.
package schema

// CategoryTable represents the 'blog.category' table.
type CategoryTable struct {
	Table        string
	ID           string
	Name         string
	Description  string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
}

// Category is the schema definition for blog.category.
var Category = CategoryTable{
	Table:        "blog.category",
	ID:           "id",
	Name:         "name",
	Description:  "description",
	DisplayOrder: "displayorder",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.DisplayOrder, t.CreatedAt, t.UpdatedAt}
}
