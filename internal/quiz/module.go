// Package quiz provides the public lead-capture quiz bounded context.
package quiz

import (
	apphttp "fisiohome_backend/internal/http"
	"fisiohome_backend/internal/quiz/handler"
	"fisiohome_backend/internal/quiz/service"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/validator"
)

// Module is the quiz bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the quiz module. Leads are stored through the leads
// context, injected as a port.
func NewModule(leads service.LeadCreator, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(leads, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "quiz"
}

// RegisterRoutes mounts the public submission endpoint with the strict
// per-IP limiter: lead capture is an unauthenticated write.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("")
	group.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(group)
}
