// Package auth provides the admin authentication bounded context.
package auth

import (
	"fisiohome_backend/internal/auth/handler"
	"fisiohome_backend/internal/auth/repository"
	"fisiohome_backend/internal/auth/service"
	apphttp "fisiohome_backend/internal/http"
	"fisiohome_backend/platform/config"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config combines the configuration surfaces the module needs.
type Config interface {
	config.AuthServiceConfig
	config.CookieConfig
}

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the auth module.
func NewModule(pool *pgxpool.Pool, cfg Config, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	return &Module{handler: handler.New(svc, cfg, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts the credential endpoints behind the strict
// limiter and the profile endpoint behind the JWT guard.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	users := ctx.V1.Group("/users")
	users.Use(ctx.AuthMiddleware)
	users.GET("/me", m.handler.GetMe)
}
