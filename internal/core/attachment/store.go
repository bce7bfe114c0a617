// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"context"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// Repository is the data access contract for attachment metadata.
type Repository interface {
	FindByID(context context.Context, db postgres.Querier, id string) (*Attachment, error)
	Create(context context.Context, db postgres.Querier, attachment *Attachment) error
}

// ObjectStore keeps attachment bytes. Satisfied by [*storage.S3].
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
