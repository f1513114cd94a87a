// Package leads provides the lead management bounded context module.
package leads

import (
	apphttp "fisiohome_backend/internal/http"
	"fisiohome_backend/internal/leads/handler"
	"fisiohome_backend/internal/leads/repository"
	"fisiohome_backend/internal/leads/service"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service exposes the lead service for modules that create leads
// through other entry points.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the admin lead endpoints.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Admin)
}
