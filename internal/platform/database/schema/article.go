// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ArticleTable represents the 'blog.article' table.
type ArticleTable struct {
	Table       string
	ID          string
	UserID      string
	UserName    string
	CategoryID  string
	CoverID     string
	ContentID   string
	Name        string
	Description string
	Tags        string
	PublishAt   string
	CreatedAt   string
	UpdatedAt   string
}

// Article is the schema definition for blog.article.
var Article = ArticleTable{
	Table:       "blog.article",
	ID:          "id",
	UserID:      "userid",
	UserName:    "username",
	CategoryID:  "categoryid",
	CoverID:     "coverid",
	ContentID:   "contentid",
	Name:        "name",
	Description: "description",
	Tags:        "tags",
	PublishAt:   "publishat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t ArticleTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.UserName, t.CategoryID, t.CoverID, t.ContentID,
		t.Name, t.Description, t.Tags, t.PublishAt, t.CreatedAt, t.UpdatedAt,
	}
}
