// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// FindByEmail returns the account with the given email, or NOT_FOUND.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindByID returns the account, or NOT_FOUND.
	FindByID(context context.Context, id string) (*User, error)

	// Create persists a new account. A duplicate email is a CONFLICT.
	Create(context context.Context, user *User) error
}
