// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/setting"
)

type staticRepo map[string]map[string]string

func (r staticRepo) FindGroup(_ context.Context, group string) (map[string]string, error) {
	return r[group], nil
}

func TestWebsite(t *testing.T) {
	service := setting.NewService(staticRepo{
		"website": {"name": "My Blog", "description": "Notes"},
	})

	website, err := service.Website(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &setting.Website{Name: "My Blog", Description: "Notes"}, website)
}

func TestWebsite_Defaults(t *testing.T) {
	service := setting.NewService(staticRepo{})

	website, err := service.Website(context.Background())
	require.NoError(t, err)
	assert.Equal(t, setting.DefaultWebsiteName, website.Name)
	assert.Empty(t, website.Description)
}
