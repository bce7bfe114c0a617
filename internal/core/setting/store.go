// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import "context"

// Repository is the data access contract for settings.
type Repository interface {
	// FindGroup returns every key/value pair of group; an unknown group is empty.
	FindGroup(context context.Context, group string) (map[string]string, error)
}
