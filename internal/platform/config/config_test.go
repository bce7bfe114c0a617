// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/inkwell")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "development", cfg.Mode())
	assert.Equal(t, "http://", cfg.Scheme())
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_SchemeAndOrigin(t *testing.T) {
	cfg := &config.Config{HTTPS: true, Environment: "production", CORSOriginSuffix: "inkwell.blog"}

	assert.Equal(t, "https://", cfg.Scheme())
	assert.Equal(t, "production", cfg.Mode())
	assert.True(t, cfg.AllowedOrigin("https://www.inkwell.blog"))
	assert.False(t, cfg.AllowedOrigin("https://evil.example"))
}
