// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres/postgrestest"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

func seeded() *memoryRepo {
	return newMemoryRepo(
		&category.Category{ID: "a", Name: "A", DisplayOrder: 0},
		&category.Category{ID: "b", Name: "B", DisplayOrder: 1},
		&category.Category{ID: "c", Name: "C", DisplayOrder: 2},
	)
}

func newService(repo *memoryRepo, counts countMap) (*category.Service, *postgrestest.DB) {
	db := postgrestest.New()
	return category.NewService(repo, db, counts), db
}

func TestSort_AppliesPermutation(t *testing.T) {
	repo := seeded()
	service, db := newService(repo, nil)

	require.NoError(t, service.Sort(context.Background(), []string{"c", "a", "b"}))

	assert.Equal(t, map[string]int{"c": 0, "a": 1, "b": 2}, repo.snapshot())
	assert.Equal(t, 1, db.Commits)
}

func TestSort_UnchangedOrderWritesNothing(t *testing.T) {
	repo := seeded()
	service, db := newService(repo, nil)

	require.NoError(t, service.Sort(context.Background(), []string{"a", "b", "c"}))
	assert.Zero(t, db.Commits)
}

func TestSort_FailedWriteRollsBackEverything(t *testing.T) {
	repo := seeded()
	repo.failOn = "b"
	service, db := newService(repo, nil)

	before := repo.snapshot()
	db.OnRollback = func() { repo.restore(before) }

	err := service.Sort(context.Background(), []string{"c", "a", "b"})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.Equal(t, 1, db.Rollbacks)
	assert.Equal(t, before, repo.snapshot())
}

func TestSort_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"too short", []string{"a", "b"}},
		{"too long", []string{"a", "b", "c", "d"}},
		{"duplicate", []string{"a", "a", "b"}},
		{"unknown", []string{"a", "b", "zzz"}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seeded()
			service, db := newService(repo, nil)
			before := repo.snapshot()

			err := service.Sort(context.Background(), tt.ids)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, category.FieldID, appErr.Details[0].Field)
			assert.Equal(t, before, repo.snapshot())
			assert.Zero(t, db.Commits)
		})
	}
}

func TestCreate_AppendsAfterMax(t *testing.T) {
	repo := newMemoryRepo()
	service, _ := newService(repo, nil)

	first, err := service.Create(context.Background(), category.CreateInput{Name: " News "})
	require.NoError(t, err)
	assert.Equal(t, 0, first.DisplayOrder)
	assert.Equal(t, "News", first.Name)

	second, err := service.Create(context.Background(), category.CreateInput{Name: "Tech", Description: "Gadgets"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_RequiresName(t *testing.T) {
	service, _ := newService(newMemoryRepo(), nil)

	_, err := service.Create(context.Background(), category.CreateInput{Name: "   "})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestUpdate(t *testing.T) {
	repo := seeded()
	service, _ := newService(repo, nil)

	updated, err := service.Update(context.Background(), "a", category.UpdateInput{Description: pointer.To("about a")})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "about a", updated.Description)

	_, err = service.Update(context.Background(), "a", category.UpdateInput{Name: pointer.To("")})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Update(context.Background(), "missing", category.UpdateInput{Name: pointer.To("x")})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestDelete_ReferenceSafe(t *testing.T) {
	repo := seeded()
	service, _ := newService(repo, countMap{"b": 2})

	err := service.Delete(context.Background(), "b")
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Contains(t, repo.rows, "b")

	require.NoError(t, service.Delete(context.Background(), "a"))
	assert.NotContains(t, repo.rows, "a")

	err = service.Delete(context.Background(), "a")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
