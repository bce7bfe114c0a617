// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache memoizes expensive rendered documents (the RSS feed) behind a
get-or-compute API.

A [Store] sits on top of a [Backend] (Redis or process memory). Concurrent
misses for the same key inside one process are collapsed with
singleflight; misses in different processes may compute redundantly.
Backend failures are logged and treated as misses so the cache never turns
into an outage.
*/
package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
)

// Backend is raw key/value storage with expiry.
type Backend interface {
	// Get returns the value and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ComputeFunc produces the value for a missing key.
type ComputeFunc func(ctx context.Context) ([]byte, error)

// Store is a get-or-compute cache.
type Store struct {
	backend Backend
	group   singleflight.Group
}

// NewStore wraps backend in a get-or-compute cache.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// GetOrCompute returns the cached value for key, or runs compute, stores its
// result for ttl and returns it. Errors from compute are returned and
// nothing is stored.
//
// The shared computation is detached from the caller's cancellation; each
// caller stops waiting when its own ctx is done.
func (s *Store) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) ([]byte, error) {
	logger := ctxutil.GetLogger(ctx)

	if value, ok := s.lookup(ctx, logger, key); ok {
		return value, nil
	}

	flight := context.WithoutCancel(ctx)
	results := s.group.DoChan(key, func() (any, error) {
		// Another flight may have filled the key while this one waited.
		if value, ok := s.lookup(flight, logger, key); ok {
			return value, nil
		}

		value, err := compute(flight)
		if err != nil {
			return nil, err
		}

		if err := s.backend.Set(flight, key, value, ttl); err != nil {
			logger.WarnContext(flight, "cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		if result.Shared {
			logger.DebugContext(ctx, "cache_flight_shared", slog.String("key", key))
		}
		return result.Val.([]byte), nil
	}
}

func (s *Store) lookup(ctx context.Context, logger *slog.Logger, key string) ([]byte, bool) {
	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "cache_get_failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return value, ok
}
