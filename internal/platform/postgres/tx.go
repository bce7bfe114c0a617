// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by [*pgxpool.Pool] and [pgx.Tx], so
// repositories can run the same statements inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions. Satisfied by [*pgxpool.Pool].
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InTx runs fn inside a single transaction. Any error returned by fn, or a
// failed commit, rolls back every statement fn issued.
func InTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	transaction, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// No-op once committed.
	defer transaction.Rollback(ctx)

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}

// DB is what services depend on: a querier for single statements plus a way
// to group statements into one transaction.
type DB interface {
	Querier
	InTx(ctx context.Context, fn func(q Querier) error) error
}

// PoolDB adapts a pool to [DB].
type PoolDB struct {
	*pgxpool.Pool
}

// NewDB wraps pool as a [DB].
func NewDB(pool *pgxpool.Pool) *PoolDB {
	return &PoolDB{Pool: pool}
}

// InTx runs fn inside a transaction on the wrapped pool.
func (db *PoolDB) InTx(ctx context.Context, fn func(q Querier) error) error {
	return InTx(ctx, db.Pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
