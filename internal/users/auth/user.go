// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth authenticates accounts and issues access tokens.

Accounts are provisioned by operators; the public surface is login plus a
"who am I" view of the current token.
*/
package auth

import (
	"time"

	"github.com/taibuivan/inkwell/internal/platform/sec"
)

// # Domain Entities

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         sec.Role  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginSession is the result of a successful login.
type LoginSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
	User        *User  `json:"user"`
}

// LoginInput carries credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// # Field Identifiers

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// TokenType is the scheme clients put in the Authorization header.
const TokenType = "Bearer"

// MinPasswordLength applies to provisioned accounts.
const MinPasswordLength = 8
