// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// pgx.ErrNoRows becomes NOT_FOUND for the named resource and a foreign key
// violation becomes CONFLICT; anything else is an internal fault whose cause
// is kept for logging. The action names the failed
// statement and ends up in the wrapped cause.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		conflict := apperr.Conflict(resource + " is referenced by other records.")
		conflict.Cause = &actionError{action: action, err: err}
		return conflict
	}

	// Already classified upstream (e.g. inside a transaction callback).
	if ae := apperr.As(err); ae != nil {
		return ae
	}

	return apperr.Internal(&actionError{action: action, err: err})
}

// foreignKeyViolation is the SQLSTATE of a failed foreign key check.
const foreignKeyViolation = "23503"

type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
