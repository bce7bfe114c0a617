// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package text

import (
	"context"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// Repository is the data access contract for text blobs. Every method takes
// the querier to run on so callers can enlist it in their transaction.
type Repository interface {

	// FindByID returns the text, or NOT_FOUND.
	FindByID(context context.Context, db postgres.Querier, id string) (*Text, error)

	// Create inserts a new revision.
	Create(context context.Context, db postgres.Querier, text *Text) error

	// DeleteByRef removes every revision owned by refID.
	DeleteByRef(context context.Context, db postgres.Querier, refID string) error
}
