// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

// CookieConfig provides settings for refresh token cookies.
type CookieConfig interface {
	GetRefreshCookieName() string
	GetRefreshCookieDomain() string
	GetRefreshCookiePath() string
	GetRefreshCookieSecure() bool
	GetRefreshCookieSameSite() http.SameSite
	GetRefreshTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// StorageConfig provides settings for S3-compatible object storage.
type StorageConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOPublicBaseURL() string
	GetMinIOMaxFileSize() int64
	GetMinioBucketCMSImages() string
	IsMinIOEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	DatabaseURL           string
	JWTAccessSecret       string
	AccessTokenTTL        time.Duration
	RefreshTokenTTL       time.Duration
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	RefreshCookieName     string
	RefreshCookieDomain   string
	RefreshCookiePath     string
	RefreshCookieSecure   bool
	RefreshCookieSameSite http.SameSite
	MinIOEndpoint         string
	MinIOAccessKey        string
	MinIOSecretKey        string
	MinIOUseSSL           bool
	MinIOPublicBaseURL    string
	MinIOMaxFileSize      int64
	MinioBucketCMSImages  string
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTAccessSecret:       os.Getenv("JWT_ACCESS_SECRET"),
		AccessTokenTTL:        getDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:       getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		CORSAllowAll:          getBool("CORS_ALLOW_ALL", false),
		CORSOrigins:           getList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		CORSAllowCreds:        getBool("CORS_ALLOW_CREDENTIALS", true),
		RefreshCookieName:     getEnv("REFRESH_COOKIE_NAME", "fisiohome_refresh"),
		RefreshCookieDomain:   os.Getenv("REFRESH_COOKIE_DOMAIN"),
		RefreshCookiePath:     getEnv("REFRESH_COOKIE_PATH", "/api/v1/auth"),
		RefreshCookieSecure:   getBool("REFRESH_COOKIE_SECURE", true),
		RefreshCookieSameSite: parseSameSite(getEnv("REFRESH_COOKIE_SAMESITE", "lax")),
		MinIOEndpoint:         os.Getenv("MINIO_ENDPOINT"),
		MinIOAccessKey:        os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey:        os.Getenv("MINIO_SECRET_KEY"),
		MinIOUseSSL:           getBool("MINIO_USE_SSL", false),
		MinIOPublicBaseURL:    os.Getenv("MINIO_PUBLIC_BASE_URL"),
		MinIOMaxFileSize:      getInt64("MINIO_MAX_FILE_SIZE", 10*1024*1024),
		MinioBucketCMSImages:  getEnv("MINIO_BUCKET_CMS_IMAGES", "cms-images"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string          { return c.DatabaseURL }
func (c *Config) GetJWTAccessSecret() string      { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration  { return c.AccessTokenTTL }
func (c *Config) GetRefreshTokenTTL() time.Duration { return c.RefreshTokenTTL }

func (c *Config) GetHTTPAddr() string       { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool     { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string  { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool   { return c.CORSAllowCreds }

func (c *Config) GetRefreshCookieName() string   { return c.RefreshCookieName }
func (c *Config) GetRefreshCookieDomain() string { return c.RefreshCookieDomain }
func (c *Config) GetRefreshCookiePath() string   { return c.RefreshCookiePath }
func (c *Config) GetRefreshCookieSecure() bool   { return c.RefreshCookieSecure }
func (c *Config) GetRefreshCookieSameSite() http.SameSite {
	return c.RefreshCookieSameSite
}

func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinIOPublicBaseURL() string { return c.MinIOPublicBaseURL }
func (c *Config) GetMinIOMaxFileSize() int64    { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketCMSImages() string {
	return c.MinioBucketCMSImages
}
func (c *Config) IsMinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
