// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// fakeTx buffers statements until Commit. Like pgx, Rollback after Commit is
// a no-op.
type fakeTx struct {
	pgx.Tx

	pending   []string
	committed *[]string
	commitErr error

	commits   int
	rollbacks int
	closed    bool
}

func (tx *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	tx.pending = append(tx.pending, sql)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.commits++
	tx.closed = true
	if tx.commitErr != nil {
		tx.pending = nil
		return tx.commitErr
	}
	*tx.committed = append(*tx.committed, tx.pending...)
	tx.pending = nil
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.rollbacks++
	tx.closed = true
	tx.pending = nil
	return nil
}

type fakeBeginner struct {
	committed []string
	commitErr error
	beginErr  error
	tx        *fakeTx
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.tx = &fakeTx{committed: &b.committed, commitErr: b.commitErr}
	return b.tx, nil
}

func TestInTx_CommitsOnce(t *testing.T) {
	db := &fakeBeginner{}

	err := postgres.InTx(context.Background(), db, func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(), "UPDATE a")
		require.NoError(t, err)
		_, err = tx.Exec(context.Background(), "UPDATE b")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, db.tx.commits)
	assert.Zero(t, db.tx.rollbacks)
	assert.Equal(t, []string{"UPDATE a", "UPDATE b"}, db.committed)
}

func TestInTx_ErrorRollsBackEverything(t *testing.T) {
	db := &fakeBeginner{}
	failed := errors.New("second write failed")

	err := postgres.InTx(context.Background(), db, func(tx pgx.Tx) error {
		_, _ = tx.Exec(context.Background(), "UPDATE a")
		_, _ = tx.Exec(context.Background(), "UPDATE b")
		return failed
	})
	assert.ErrorIs(t, err, failed)

	assert.Zero(t, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, db.committed)
}

func TestInTx_CommitFailureSurfaces(t *testing.T) {
	commitErr := errors.New("serialization failure")
	db := &fakeBeginner{commitErr: commitErr}

	err := postgres.InTx(context.Background(), db, func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(), "UPDATE a")
		return err
	})
	assert.ErrorIs(t, err, commitErr)
	assert.Empty(t, db.committed)
}

func TestInTx_BeginFailure(t *testing.T) {
	beginErr := errors.New("pool closed")
	db := &fakeBeginner{beginErr: beginErr}

	called := false
	err := postgres.InTx(context.Background(), db, func(pgx.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}
