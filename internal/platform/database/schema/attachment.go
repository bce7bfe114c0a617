// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AttachmentTable represents the 'media.attachment' table.
type AttachmentTable struct {
	Table       string
	ID          string
	UserID      string
	Name        string
	Description string
	Mime        string
	Width       string
	Height      string
	Size        string
	ObjectKey   string
	URL         string
	CreatedAt   string
}

// Attachment is the schema definition for media.attachment.
var Attachment = AttachmentTable{
	Table:       "media.attachment",
	ID:          "id",
	UserID:      "userid",
	Name:        "name",
	Description: "description",
	Mime:        "mime",
	Width:       "width",
	Height:      "height",
	Size:        "size",
	ObjectKey:   "objectkey",
	URL:         "url",
	CreatedAt:   "createdat",
}

func (t AttachmentTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.Description, t.Mime, t.Width, t.Height, t.Size, t.ObjectKey, t.URL, t.CreatedAt}
}
