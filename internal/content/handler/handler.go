// Package handler exposes the public content endpoints and the admin
// content editor API.
package handler

import (
	"net/http"

	"fisiohome_backend/internal/content/service"
	"fisiohome_backend/internal/content/transport"
	"fisiohome_backend/platform/httpkit"
	"fisiohome_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes mounts the read-only resolution endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/pages/:page", h.ResolvePage)
	rg.GET("/content/pages/:page/values/:section/:key", h.GetValue)
}

// RegisterAdminRoutes mounts the editor endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.Overview)
	rg.GET("/content/:page", h.ListRaw)
	rg.PUT("/content", h.SaveBatch)
}

func (h *Handler) ResolvePage(c *gin.Context) {
	resp, err := h.svc.ResolvePage(c.Request.Context(), c.Param("page"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) GetValue(c *gin.Context) {
	resp, err := h.svc.GetValue(c.Request.Context(),
		c.Param("page"), c.Param("section"), c.Param("key"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) Overview(c *gin.Context) {
	resp, err := h.svc.Overview(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) ListRaw(c *gin.Context) {
	resp, err := h.svc.ListRaw(c.Request.Context(), c.Param("page"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) SaveBatch(c *gin.Context) {
	var req transport.SaveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.SaveBatch(c.Request.Context(), req); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"saved": len(req.Items)})
}
