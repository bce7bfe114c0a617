// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the platform:
server timing, rate limits, security identifiers, HTTP header names and
cache keys shared between layers.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "inkwell-api"
	AppVersion = "0.1.0"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get during shutdown.
	ShutdownTimeout = 30 * time.Second

	// ReadinessTimeout bounds each dependency probe of /ready.
	ReadinessTimeout = 2 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS   = 100.0
	DefaultRateLimitBurst = 150

	RateLimitCleanupInterval = 1 * time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of access tokens.
	AuthIssuer = "inkwell"

	// AccessTokenTTL is how long an access token issued at login stays valid.
	AccessTokenTTL = 2 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderCacheControl  = "Cache-Control"
)

// # JSON Field Identifiers

const (
	FieldCode  = "code"
	FieldError = "error"
	FieldID    = "id"
)

// # Cache Taxonomy

const (
	// CacheKeyArticleFeed holds the rendered RSS document of recent articles.
	CacheKeyArticleFeed = "feed:articles"

	// FeedMaxAge is the freshness window of the cached feed, also sent to clients.
	FeedMaxAge = time.Hour

	// FeedMaxItems bounds the number of articles in the default feed.
	FeedMaxItems = 20
)
