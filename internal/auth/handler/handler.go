// Package handler exposes the admin authentication endpoints.
package handler

import (
	"net/http"
	"time"

	"fisiohome_backend/internal/auth/service"
	"fisiohome_backend/internal/auth/transport"
	"fisiohome_backend/platform/config"
	"fisiohome_backend/platform/httpkit"
	"fisiohome_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgTokenInvalid     = "token invalid"
)

type Handler struct {
	svc *service.Service
	cfg config.CookieConfig
	val *validator.Validator
}

func New(svc *service.Service, cfg config.CookieConfig, val *validator.Validator) *Handler {
	return &Handler{svc: svc, cfg: cfg, val: val}
}

// RegisterRoutes mounts the credential endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
	rg.POST("/logout", h.Logout)
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	accessToken, refreshToken, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	h.setRefreshCookie(c, refreshToken)
	httpkit.OK(c, transport.AuthResponse{AccessToken: accessToken})
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.GetRefreshCookieName())
	if err != nil || refreshToken == "" {
		httpkit.Error(c, http.StatusUnauthorized, msgTokenInvalid, nil)
		return
	}

	accessToken, newRefreshToken, err := h.svc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		httpkit.HandleError(c, err)
		return
	}

	h.setRefreshCookie(c, newRefreshToken)
	httpkit.OK(c, transport.AuthResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(h.cfg.GetRefreshCookieName()); err == nil && refreshToken != "" {
		if err := h.svc.SignOut(c.Request.Context(), refreshToken); err != nil {
			httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	h.clearRefreshCookie(c)
	httpkit.OK(c, gin.H{"message": "signed out"})
}

// GetMe returns the signed-in admin, resolved from the access token.
func (h *Handler) GetMe(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	profile, err := h.svc.GetMe(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, profile)
}

func (h *Handler) setRefreshCookie(c *gin.Context, value string) {
	maxAge := int(h.cfg.GetRefreshTokenTTL() / time.Second)
	c.SetSameSite(h.cfg.GetRefreshCookieSameSite())
	c.SetCookie(
		h.cfg.GetRefreshCookieName(),
		value,
		maxAge,
		h.cfg.GetRefreshCookiePath(),
		h.cfg.GetRefreshCookieDomain(),
		h.cfg.GetRefreshCookieSecure(),
		true,
	)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(h.cfg.GetRefreshCookieSameSite())
	c.SetCookie(
		h.cfg.GetRefreshCookieName(),
		"",
		-1,
		h.cfg.GetRefreshCookiePath(),
		h.cfg.GetRefreshCookieDomain(),
		h.cfg.GetRefreshCookieSecure(),
		true,
	)
}
