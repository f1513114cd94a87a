package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Repository is the persistence port for admin accounts and refresh
// tokens.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (AdminUser, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (AdminUser, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error

	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	// GetRefreshToken resolves an unrevoked token hash to its owner and
	// expiry.
	GetRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, time.Time, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error
}
