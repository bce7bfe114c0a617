// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables into a strongly-typed [Config]
using caarlos0/env. Configuration is loaded once at startup and passed to
components through their constructors.

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the Inkwell API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// HTTPS selects the scheme of absolute URLs (feed links).
	HTTPS bool `env:"HTTPS" envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Feed cache. Empty means an in-process cache.
	RedisURL string `env:"REDIS_URL"`

	// Access token keys
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required,notEmpty"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`

	// Object storage for attachments (S3-compatible). Empty endpoint disables uploads.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION"     envDefault:"auto"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Bootstrap administrator, created at startup when both are set and
	// no account uses the email yet.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Origins ending with this suffix are allowed in production.
	CORSOriginSuffix string `env:"CORS_ORIGIN_SUFFIX"`
}

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Mode returns the human-readable run mode logged at startup.
func (c *Config) Mode() string {
	if c.IsProduction() {
		return "production"
	}
	return "development"
}

// Scheme returns the URL scheme prefix used for absolute links.
func (c *Config) Scheme() string {
	if c.HTTPS {
		return "https://"
	}
	return "http://"
}

// AllowedOrigin reports whether a CORS origin is accepted outside development.
func (c *Config) AllowedOrigin(origin string) bool {
	return c.CORSOriginSuffix != "" && len(origin) >= len(c.CORSOriginSuffix) &&
		origin[len(origin)-len(c.CORSOriginSuffix):] == c.CORSOriginSuffix
}
