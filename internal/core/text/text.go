// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package text stores article bodies as immutable blobs.

Every revision of an article's content is a new [Text] row; the article
points at the current one through its content id. All revisions share the
article id as their ref id so they can be removed together.
*/
package text

import "time"

// Text is one stored content revision.
type Text struct {
	ID        string    `json:"id"`
	RefID     string    `json:"ref_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
