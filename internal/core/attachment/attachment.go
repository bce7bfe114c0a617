// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package attachment accepts uploaded images, stores their bytes in object
storage and records their metadata.

Articles reference an attachment as their cover. Only raster images whose
format can be probed (PNG, JPEG, GIF, WebP) are accepted.
*/
package attachment

import "time"

// MaxSize is the largest accepted upload in bytes.
const MaxSize = 10 << 20

// Attachment is the metadata of one stored object.
type Attachment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Mime        string    `json:"mime"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"-"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Upload describes an image to store.
type Upload struct {
	UserID      string
	Name        string
	Description string
	Data        []byte
}

// # Field Identifiers

const (
	FieldImage = "image"
)
