// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TextTable represents the 'blog.text' table.
type TextTable struct {
	Table     string
	ID        string
	RefID     string
	Value     string
	CreatedAt string
}

// Text is the schema definition for blog.text.
var Text = TextTable{
	Table:     "blog.text",
	ID:        "id",
	RefID:     "refid",
	Value:     "value",
	CreatedAt: "createdat",
}
