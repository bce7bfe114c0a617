// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// # Category Data Access

// Repository defines the data access contract for categories. Each method
// runs on the given querier so the service decides transaction scope.
type Repository interface {

	/*
		List returns every category ordered by display order.

		Returns:
		  - []*Category: All categories, possibly empty
		  - error: Database retrieval failures
	*/
	List(context context.Context, db postgres.Querier) ([]*Category, error)

	/*
		FindByID retrieves a category by id.

		Returns:
		  - *Category: Hydrated entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, db postgres.Querier, id string) (*Category, error)

	// MaxDisplayOrder returns the largest display order, or -1 when empty.
	MaxDisplayOrder(context context.Context, db postgres.Querier) (int, error)

	Create(context context.Context, db postgres.Querier, category *Category) error

	// Update writes name, description and updated_at.
	Update(context context.Context, db postgres.Querier, category *Category) error

	/*
		UpdateDisplayOrders writes only the display_order column of each
		changed category. Callers run it inside a transaction so the batch is
		applied completely or not at all.
	*/
	UpdateDisplayOrders(context context.Context, db postgres.Querier, changes []OrderChange) error

	Delete(context context.Context, db postgres.Querier, id string) error
}

// ArticleCounter reports how many articles reference a category.
type ArticleCounter interface {
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
