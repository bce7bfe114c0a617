// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic helpers for optional values, mostly the
// pointer fields of partial-update request bodies.
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}
