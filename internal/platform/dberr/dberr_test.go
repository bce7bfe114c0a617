// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	foreignKey := &pgconn.PgError{Code: "23503", ConstraintName: "article_categoryid_fkey"}

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"foreign_key_violation", fmt.Errorf("exec: %w", foreignKey), apperr.CodeConflict},
		{"already_classified", apperr.Forbidden("no"), apperr.CodeForbidden},
		{"driver_fault", errors.New("connection reset"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "Category", "delete_category")
			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestWrap_ForeignKeyKeepsCause(t *testing.T) {
	foreignKey := &pgconn.PgError{Code: "23503"}

	err := dberr.Wrap(foreignKey, "Category", "delete_category")

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "Category is referenced by other records.", apperr.As(err).Message)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Category", "delete_category"))
}
