// Package service implements admin authentication: password sign-in,
// rotating refresh tokens, and profile lookup.
package service

import (
	"context"
	"time"

	"fisiohome_backend/internal/auth/password"
	"fisiohome_backend/internal/auth/repository"
	"fisiohome_backend/internal/auth/token"
	"fisiohome_backend/internal/auth/transport"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/config"
	"fisiohome_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType = "access"

	msgInvalidCredentials = "invalid credentials"
	msgTokenInvalid       = "token invalid"
	msgTokenExpired       = "token expired"
)

type Service struct {
	repo repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
	now  func() time.Time
}

func New(repo repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log, now: time.Now}
}

// SignIn verifies credentials and issues an access/refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (string, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("sign_in", user.Email, false, "wrong password")
		return "", "", apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		s.log.Error("touch last login failed", "error", err, "userId", user.ID)
	}

	s.log.AuthEvent("sign_in", user.Email, true, "")
	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. An expired token is revoked and rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	hash := token.HashSHA256(refreshToken)
	userID, expiresAt, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		return "", "", apperr.Unauthorized(msgTokenInvalid)
	}

	if s.now().After(expiresAt) {
		_ = s.repo.RevokeRefreshToken(ctx, hash)
		return "", "", apperr.Unauthorized(msgTokenExpired)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", "", apperr.Unauthorized(msgTokenInvalid)
	}

	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil {
		return "", "", err
	}

	return s.issueTokens(ctx, user)
}

// SignOut revokes the presented refresh token.
func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	return s.repo.RevokeRefreshToken(ctx, token.HashSHA256(refreshToken))
}

// GetMe returns the signed-in admin's profile.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (transport.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return transport.ProfileResponse{}, err
	}

	resp := transport.ProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		formatted := user.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &formatted
	}
	return resp, nil
}

func (s *Service) issueTokens(ctx context.Context, user repository.AdminUser) (string, string, error) {
	accessToken, err := s.signJWT(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := token.GenerateRandom(48)
	if err != nil {
		return "", "", err
	}

	hash := token.HashSHA256(refreshToken)
	expiresAt := s.now().Add(s.cfg.GetRefreshTokenTTL())
	if err := s.repo.CreateRefreshToken(ctx, user.ID, hash, expiresAt); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *Service) signJWT(user repository.AdminUser) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"type":  accessTokenType,
		"exp":   now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":   now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
