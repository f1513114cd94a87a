// Package repository provides PostgreSQL persistence for admin accounts
// and refresh tokens.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fisiohome_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userNotFoundMessage = "user not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// GetUserByEmail retrieves an admin account by email.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (AdminUser, error) {
	query := `
		SELECT id, email, password_hash, created_at, last_login_at
		FROM admin_users
		WHERE lower(email) = lower($1)`

	var user AdminUser
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminUser{}, apperr.NotFound(userNotFoundMessage)
		}
		return AdminUser{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves an admin account by ID.
func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (AdminUser, error) {
	query := `
		SELECT id, email, password_hash, created_at, last_login_at
		FROM admin_users
		WHERE id = $1`

	var user AdminUser
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminUser{}, apperr.NotFound(userNotFoundMessage)
		}
		return AdminUser{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// TouchLastLogin records a successful sign-in.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admin_users SET last_login_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// CreateRefreshToken stores a refresh token hash.
func (r *Repo) CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO auth_refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken resolves an unrevoked token hash to its owner and expiry.
func (r *Repo) GetRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, time.Time, error) {
	query := `
		SELECT user_id, expires_at
		FROM auth_refresh_tokens
		WHERE token_hash = $1 AND revoked_at IS NULL`

	var userID uuid.UUID
	var expiresAt time.Time
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, time.Time{}, apperr.Unauthorized("token invalid")
		}
		return uuid.Nil, time.Time{}, fmt.Errorf("get refresh token: %w", err)
	}

	return userID, expiresAt, nil
}

// RevokeRefreshToken marks one token as revoked.
func (r *Repo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE auth_refresh_tokens SET revoked_at = now() WHERE token_hash = $1 AND revoked_at IS NULL`,
		tokenHash)
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllRefreshTokens invalidates every session of one user.
func (r *Repo) RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE auth_refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`,
		userID)
	if err != nil {
		return fmt.Errorf("revoke all refresh tokens: %w", err)
	}
	return nil
}
