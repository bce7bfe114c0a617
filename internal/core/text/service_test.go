// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package text_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/text"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/postgres/postgrestest"
)

type memoryRepo map[string]*text.Text

func (m memoryRepo) FindByID(_ context.Context, _ postgres.Querier, id string) (*text.Text, error) {
	if t, ok := m[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Text")
}

func (m memoryRepo) Create(_ context.Context, _ postgres.Querier, t *text.Text) error {
	m[t.ID] = t
	return nil
}

func (m memoryRepo) DeleteByRef(_ context.Context, _ postgres.Querier, refID string) error {
	for id, t := range m {
		if t.RefID == refID {
			delete(m, id)
		}
	}
	return nil
}

func TestRevisionsShareRef(t *testing.T) {
	repo := memoryRepo{}
	db := postgrestest.New()
	service := text.NewService(repo, db)
	ctx := context.Background()

	first, err := service.Create(ctx, db, "article-1", "v1")
	require.NoError(t, err)
	second, err := service.Create(ctx, db, "article-1", "v2")
	require.NoError(t, err)
	other, err := service.Create(ctx, db, "article-2", "x")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	got, err := service.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Value)

	require.NoError(t, service.DeleteByRef(ctx, db, "article-1"))

	_, err = service.Get(ctx, second.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	_, err = service.Get(ctx, other.ID)
	assert.NoError(t, err)
}
