// Package handler exposes the public quiz submission endpoint.
package handler

import (
	"net/http"

	"fisiohome_backend/internal/quiz/service"
	"fisiohome_backend/internal/quiz/transport"
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

// RegisterRoutes mounts the submission endpoint on the public group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz/submissions", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, lead)
}
