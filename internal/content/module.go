// Package content provides the editable page content bounded context:
// public resolution over shipped defaults and the admin editor.
package content

import (
	"fisiohome_backend/internal/adapters/storage"
	"fisiohome_backend/internal/content/handler"
	"fisiohome_backend/internal/content/repository"
	"fisiohome_backend/internal/content/service"
	apphttp "fisiohome_backend/internal/http"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the content bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	images  *handler.ImagesHandler
}

// NewModule creates and initializes the content module. The image store
// is optional: without object storage configured the media library
// routes are simply not mounted.
func NewModule(pool *pgxpool.Pool, store storage.ImageStore, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	m := &Module{handler: handler.New(svc, val)}
	if store != nil {
		m.images = handler.NewImagesHandler(store, log)
	}
	return m
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "content"
}

// RegisterRoutes mounts the public resolution endpoints and the
// authenticated editor endpoints.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.V1)
	m.handler.RegisterAdminRoutes(ctx.Admin)
	if m.images != nil {
		m.images.RegisterRoutes(ctx.Admin)
	}
}
