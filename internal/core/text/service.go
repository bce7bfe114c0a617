// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package text

import (
	"context"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// Service stores and loads content blobs.
type Service struct {
	repo Repository
	db   postgres.DB
	now  func() time.Time
}

// NewService constructs a new text [Service].
func NewService(repo Repository, db postgres.DB) *Service {
	return &Service{repo: repo, db: db, now: time.Now}
}

// Get loads a text by id.
func (service *Service) Get(ctx context.Context, id string) (*Text, error) {
	return service.repo.FindByID(ctx, service.db, id)
}

// Create stores a new revision owned by refID on q, which may be a transaction.
func (service *Service) Create(ctx context.Context, q postgres.Querier, refID, value string) (*Text, error) {
	text := &Text{
		ID:        uuid.New(),
		RefID:     refID,
		Value:     value,
		CreatedAt: service.now().UTC(),
	}

	if err := service.repo.Create(ctx, q, text); err != nil {
		return nil, err
	}
	return text, nil
}

// DeleteByRef removes every revision owned by refID on q.
func (service *Service) DeleteByRef(ctx context.Context, q postgres.Querier, refID string) error {
	return service.repo.DeleteByRef(ctx, q, refID)
}
