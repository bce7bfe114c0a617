// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// # Article Data Access

// Repository defines the data access contract for articles. Each method
// runs on the given querier so the service decides transaction scope.
type Repository interface {

	/*
		List returns one page of articles matching filter, newest publish_at
		first.

		Parameters:
		  - filter: Filter (publish cut-off, category)
		  - limit, offset: int
	*/
	List(context context.Context, db postgres.Querier, filter Filter, limit, offset int) ([]*Article, error)

	// Count returns how many articles match filter.
	Count(context context.Context, db postgres.Querier, filter Filter) (int, error)

	// FindByID returns the article, or NOT_FOUND.
	FindByID(context context.Context, db postgres.Querier, id string) (*Article, error)

	Create(context context.Context, db postgres.Querier, article *Article) error

	// Update writes every mutable column.
	Update(context context.Context, db postgres.Querier, article *Article) error

	Delete(context context.Context, db postgres.Querier, id string) error
}

// Counter counts articles per category. It satisfies the category
// package's reference check without depending on [Service], which itself
// needs categories.
type Counter struct {
	repo Repository
	db   postgres.Querier
}

// NewCounter constructs a [Counter].
func NewCounter(repo Repository, db postgres.Querier) *Counter {
	return &Counter{repo: repo, db: db}
}

// CountByCategory counts every article, scheduled or not, in a category.
func (counter *Counter) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	return counter.repo.Count(ctx, counter.db, Filter{CategoryID: categoryID})
}
