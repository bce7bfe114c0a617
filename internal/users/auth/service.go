// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs access tokens. Satisfied by [*sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(userID, userName string, role sec.Role, timeToLive time.Duration) (string, error)
}

// Service implements account authentication use cases.
type Service struct {
	users  UserRepository
	tokens TokenProvider
	now    func() time.Time
}

// NewService constructs a new auth [Service].
func NewService(users UserRepository, tokens TokenProvider) *Service {
	return &Service{users: users, tokens: tokens, now: time.Now}
}

var errInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

// # Login Flow

/*
Login verifies credentials and issues an access token.

Unknown emails and wrong passwords produce the same error so that
account existence does not leak.

Returns:
  - *LoginSession: Token and account
  - error: VALIDATION_ERROR, UNAUTHORIZED or storage errors
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	email := strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(ctx, email)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	token, err := service.tokens.GenerateAccessToken(user.ID, user.Name, user.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("sign access token: %w", err))
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_in",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return &LoginSession{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int(constants.AccessTokenTTL / time.Second),
		User:        user,
	}, nil
}

// Me returns the account behind the caller's token.
func (service *Service) Me(ctx context.Context, caller *sec.AuthClaims) (*User, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return service.users.FindByID(ctx, caller.UserID)
}

// # Provisioning

/*
EnsureAdmin creates an administrator account unless the email is taken.

It reports whether an account was created. An existing account is left
untouched, whatever its role.
*/
func (service *Service) EnsureAdmin(ctx context.Context, email, name, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	validator := &validate.Validator{}
	validator.Email(FieldEmail, email).
		MinLen(FieldPassword, password, MinPasswordLength).
		Required(FieldName, name)
	if err := validator.Err(); err != nil {
		return false, err
	}

	_, err := service.users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return false, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return false, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         sec.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(ctx, user); err != nil {
		return false, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "admin_provisioned", slog.String("user_id", user.ID))
	return true, nil
}
