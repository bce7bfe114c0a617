// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgrestest provides a [postgres.DB] stand-in for service tests
// whose repositories are in-memory fakes.
package postgrestest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

var errNoSQL = errors.New("postgrestest: SQL is not supported by the fake")

// DB runs transaction callbacks directly and records their outcome. Fake
// repositories ignore the querier they receive.
type DB struct {
	Commits   int
	Rollbacks int

	// OnRollback is invoked when a callback fails, letting fakes restore a
	// snapshot to mimic an aborted transaction.
	OnRollback func()
}

// New returns an empty fake.
func New() *DB {
	return &DB{}
}

func (db *DB) InTx(ctx context.Context, fn func(q postgres.Querier) error) error {
	if err := fn(db); err != nil {
		db.Rollbacks++
		if db.OnRollback != nil {
			db.OnRollback()
		}
		return err
	}
	db.Commits++
	return nil
}

func (db *DB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errNoSQL
}

func (db *DB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errNoSQL
}

func (db *DB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errNoSQL }
