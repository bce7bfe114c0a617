// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	assert.Equal(t, "pgx5://u@h/db", toPgx5DSN("postgres://u@h/db"))
	assert.Equal(t, "pgx5://u@h/db", toPgx5DSN("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://u@h/db", toPgx5DSN("pgx5://u@h/db"))
}
