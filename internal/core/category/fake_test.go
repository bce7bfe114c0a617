// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"errors"
	"sort"

	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// memoryRepo is an in-memory [category.Repository]. failOn makes the
// display order write for that id fail after earlier writes were applied.
type memoryRepo struct {
	rows   map[string]*category.Category
	failOn string
}

func newMemoryRepo(categories ...*category.Category) *memoryRepo {
	repo := &memoryRepo{rows: map[string]*category.Category{}}
	for _, c := range categories {
		repo.rows[c.ID] = c
	}
	return repo
}

func (r *memoryRepo) snapshot() map[string]int {
	orders := make(map[string]int, len(r.rows))
	for id, c := range r.rows {
		orders[id] = c.DisplayOrder
	}
	return orders
}

func (r *memoryRepo) restore(orders map[string]int) {
	for id, order := range orders {
		if c, ok := r.rows[id]; ok {
			c.DisplayOrder = order
		}
	}
}

func (r *memoryRepo) List(context.Context, postgres.Querier) ([]*category.Category, error) {
	list := make([]*category.Category, 0, len(r.rows))
	for _, c := range r.rows {
		copied := *c
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DisplayOrder < list[j].DisplayOrder })
	return list, nil
}

func (r *memoryRepo) FindByID(_ context.Context, _ postgres.Querier, id string) (*category.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}
	copied := *c
	return &copied, nil
}

func (r *memoryRepo) MaxDisplayOrder(context.Context, postgres.Querier) (int, error) {
	maxOrder := -1
	for _, c := range r.rows {
		if c.DisplayOrder > maxOrder {
			maxOrder = c.DisplayOrder
		}
	}
	return maxOrder, nil
}

func (r *memoryRepo) Create(_ context.Context, _ postgres.Querier, c *category.Category) error {
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *memoryRepo) Update(_ context.Context, _ postgres.Querier, c *category.Category) error {
	if _, ok := r.rows[c.ID]; !ok {
		return apperr.NotFound("Category")
	}
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *memoryRepo) UpdateDisplayOrders(_ context.Context, _ postgres.Querier, changes []category.OrderChange) error {
	for _, change := range changes {
		if change.ID == r.failOn {
			return apperr.Internal(errors.New("write failed"))
		}
		r.rows[change.ID].DisplayOrder = change.DisplayOrder
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, _ postgres.Querier, id string) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Category")
	}
	delete(r.rows, id)
	return nil
}

type countMap map[string]int

func (m countMap) CountByCategory(_ context.Context, id string) (int, error) {
	return m[id], nil
}
