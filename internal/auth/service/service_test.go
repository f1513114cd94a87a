package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fisiohome_backend/internal/auth/password"
	"fisiohome_backend/internal/auth/repository"
	"fisiohome_backend/internal/auth/token"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type storedToken struct {
	userID    uuid.UUID
	expiresAt time.Time
	revoked   bool
}

type fakeRepo struct {
	users  map[string]repository.AdminUser
	tokens map[string]*storedToken
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[string]repository.AdminUser),
		tokens: make(map[string]*storedToken),
	}
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (repository.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return repository.AdminUser{}, apperr.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (repository.AdminUser, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return repository.AdminUser{}, apperr.NotFound("user not found")
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeRepo) CreateRefreshToken(_ context.Context, userID uuid.UUID, hash string, expiresAt time.Time) error {
	f.tokens[hash] = &storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeRepo) GetRefreshToken(_ context.Context, hash string) (uuid.UUID, time.Time, error) {
	t, ok := f.tokens[hash]
	if !ok || t.revoked {
		return uuid.Nil, time.Time{}, apperr.Unauthorized("token invalid")
	}
	return t.userID, t.expiresAt, nil
}

func (f *fakeRepo) RevokeRefreshToken(_ context.Context, hash string) error {
	if t, ok := f.tokens[hash]; ok {
		t.revoked = true
	}
	return nil
}

func (f *fakeRepo) RevokeAllRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for _, t := range f.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

type testConfig struct{}

func (testConfig) GetJWTAccessSecret() string            { return "test-secret" }
func (testConfig) GetAccessTokenTTL() time.Duration      { return 15 * time.Minute }
func (testConfig) GetRefreshTokenTTL() time.Duration     { return 24 * time.Hour }
func (testConfig) GetRefreshCookieName() string          { return "test_refresh" }
func (testConfig) GetRefreshCookieDomain() string        { return "" }
func (testConfig) GetRefreshCookiePath() string          { return "/" }
func (testConfig) GetRefreshCookieSecure() bool          { return false }
func (testConfig) GetRefreshCookieSameSite() http.SameSite { return http.SameSiteLaxMode }

func seedUser(t *testing.T, repo *fakeRepo, email, plain string) repository.AdminUser {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user := repository.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	repo.users[email] = user
	return user
}

func newTestService(repo repository.Repository) *Service {
	return New(repo, testConfig{}, logger.New("development"))
}

func TestSignIn_IssuesValidAccessToken(t *testing.T) {
	repo := newFakeRepo()
	user := seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	accessToken, refreshToken, err := svc.SignIn(context.Background(), "admin@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if refreshToken == "" {
		t.Fatal("expected a refresh token")
	}

	parsed, err := jwt.Parse(accessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID.String() || claims["type"] != "access" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if claims["email"] != "admin@example.com" {
		t.Fatalf("email claim missing: %v", claims)
	}

	// The refresh token is stored only as a hash.
	if _, ok := repo.tokens[token.HashSHA256(refreshToken)]; !ok {
		t.Fatal("refresh token hash not stored")
	}
	if _, ok := repo.tokens[refreshToken]; ok {
		t.Fatal("raw refresh token must not be stored")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	_, _, err := svc.SignIn(context.Background(), "admin@example.com", "wrong")
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// Unknown email yields the identical error.
	_, _, err2 := svc.SignIn(context.Background(), "ghost@example.com", "whatever")
	if !apperr.Is(err2, apperr.KindUnauthorized) || err.Error() != err2.Error() {
		t.Fatalf("unknown email must be indistinguishable: %v vs %v", err, err2)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	_, refreshToken, err := svc.SignIn(context.Background(), "admin@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	_, newRefresh, err := svc.Refresh(context.Background(), refreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if newRefresh == refreshToken {
		t.Fatal("refresh must rotate the token")
	}

	// The old token is burned.
	if _, _, err := svc.Refresh(context.Background(), refreshToken); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for a rotated token, got %v", err)
	}
}

func TestRefresh_ExpiredTokenRevoked(t *testing.T) {
	repo := newFakeRepo()
	user := seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	raw, _ := token.GenerateRandom(48)
	hash := token.HashSHA256(raw)
	repo.tokens[hash] = &storedToken{userID: user.ID, expiresAt: time.Now().Add(-time.Hour)}

	if _, _, err := svc.Refresh(context.Background(), raw); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for an expired token, got %v", err)
	}
	if !repo.tokens[hash].revoked {
		t.Fatal("expired token must be revoked on use")
	}
}

func TestSignOut_RevokesToken(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	_, refreshToken, err := svc.SignIn(context.Background(), "admin@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	if err := svc.SignOut(context.Background(), refreshToken); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}
	if _, _, err := svc.Refresh(context.Background(), refreshToken); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized after sign out, got %v", err)
	}
}

func TestGetMe(t *testing.T) {
	repo := newFakeRepo()
	user := seedUser(t, repo, "admin@example.com", "correct-horse-battery")
	svc := newTestService(repo)

	profile, err := svc.GetMe(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get me failed: %v", err)
	}
	if profile.Email != "admin@example.com" || profile.ID != user.ID.String() {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.GetMe(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
