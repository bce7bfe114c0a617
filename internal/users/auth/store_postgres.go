// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

const (
	resourceName = "User"

	// uniqueViolation is the SQLSTATE of a unique constraint failure.
	uniqueViolation = "23505"
)

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a new PostgreSQL implementation of [UserRepository].
func NewUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func selectUser() string {
	account := schema.UsersAccount
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
		account.ID, account.Email, account.Name, account.Role, account.PasswordHash, account.CreatedAt,
		account.Table)
}

func (repository *PostgresUserRepository) find(context context.Context, column, value, action string) (*User, error) {
	query := selectUser() + fmt.Sprintf(` WHERE %s = $1`, column)

	var (
		user = &User{}
		role string
	)
	err := repository.db.QueryRow(context, query, value).Scan(
		&user.ID, &user.Email, &user.Name, &role, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, action)
	}

	user.Role = sec.ParseRole(role)
	return user, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.find(context, schema.UsersAccount.Email, strings.ToLower(email), "find_user_by_email")
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.find(context, schema.UsersAccount.ID, id, "find_user")
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	account := schema.UsersAccount
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		account.Table, account.ID, account.Email, account.Name, account.Role, account.PasswordHash, account.CreatedAt)

	_, err := repository.db.Exec(context, query,
		user.ID, strings.ToLower(user.Email), user.Name, user.Role.String(), user.PasswordHash, user.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("Email is already registered")
	}
	return dberr.Wrap(err, resourceName, "create_user")
}
