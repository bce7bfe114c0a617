// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for categories.
type Service struct {
	repo     Repository
	db       postgres.DB
	articles ArticleCounter
	now      func() time.Time
}

// NewService constructs a new category [Service].
func NewService(repo Repository, db postgres.DB, articles ArticleCounter) *Service {
	return &Service{
		repo:     repo,
		db:       db,
		articles: articles,
		now:      time.Now,
	}
}

// # Queries

// List returns every category ordered by display order.
func (service *Service) List(ctx context.Context) ([]*Category, error) {
	return service.repo.List(ctx, service.db)
}

// Get returns one category, or NOT_FOUND.
func (service *Service) Get(ctx context.Context, id string) (*Category, error) {
	return service.repo.FindByID(ctx, service.db, id)
}

// # Commands

/*
Create appends a new category after the current last one.

Returns:
  - *Category: The stored category with display_order = max + 1 (0 when first)
  - error: VALIDATION_ERROR on a missing name, or persistence failures
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength).
		MaxLen(FieldDescription, description, MaxDescriptionLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	maxOrder, err := service.repo.MaxDisplayOrder(ctx, service.db)
	if err != nil {
		return nil, err
	}

	now := service.now().UTC()
	category := &Category{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		DisplayOrder: maxOrder + 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repo.Create(ctx, service.db, category); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "category_created",
		slog.String("category_id", category.ID),
		slog.Int("display_order", category.DisplayOrder),
	)

	return category, nil
}

// Update applies a partial update. A provided name must not be blank.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Category, error) {
	validator := &validate.Validator{}
	validator.NotBlank(FieldName, input.Name)
	if input.Name != nil {
		validator.MaxLen(FieldName, strings.TrimSpace(*input.Name), MaxNameLength)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, strings.TrimSpace(*input.Description), MaxDescriptionLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category, err := service.repo.FindByID(ctx, service.db, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	category.UpdatedAt = service.now().UTC()

	if err := service.repo.Update(ctx, service.db, category); err != nil {
		return nil, err
	}

	return category, nil
}

/*
Sort rewrites the display order of every category from ids, which must be
a permutation of all existing category ids.

Validation happens before any write: a length mismatch or an existing id
missing from ids (which also catches duplicates and unknown ids) is a
VALIDATION_ERROR on "id". Only categories whose position changed are
written, inside one transaction.
*/
func (service *Service) Sort(ctx context.Context, ids []string) error {
	categories, err := service.repo.List(ctx, service.db)
	if err != nil {
		return err
	}

	if len(ids) != len(categories) {
		return apperr.InvalidParam(FieldID, "Invalid id list.")
	}

	position := make(map[string]int, len(ids))
	for index, id := range ids {
		if _, seen := position[id]; !seen {
			position[id] = index
		}
	}

	changes := make([]OrderChange, 0, len(categories))
	for _, category := range categories {
		index, ok := position[category.ID]
		if !ok {
			return apperr.InvalidParam(FieldID, "Invalid id parameters.")
		}
		if category.DisplayOrder != index {
			changes = append(changes, OrderChange{ID: category.ID, DisplayOrder: index})
		}
	}

	if len(changes) > 0 {
		err := service.db.InTx(ctx, func(q postgres.Querier) error {
			return service.repo.UpdateDisplayOrders(ctx, q, changes)
		})
		if err != nil {
			return err
		}
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "category_sorted",
		slog.Int("categories", len(categories)),
		slog.Int("changed", len(changes)),
	)

	return nil
}

/*
Delete removes a category that no article references.

The reference count and the delete are separate statements; an article
created in between is not detected.
*/
func (service *Service) Delete(ctx context.Context, id string) error {
	category, err := service.repo.FindByID(ctx, service.db, id)
	if err != nil {
		return err
	}

	count, err := service.articles.CountByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Category is in use and cannot be deleted.")
	}

	if err := service.repo.Delete(ctx, service.db, category.ID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "category_deleted", slog.String("category_id", category.ID))
	return nil
}
