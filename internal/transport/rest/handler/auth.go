package handler

import (
	"errors"
	"net/http"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
	log     logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, log: log}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrAdminDisabled):
		writeError(w, http.StatusUnauthorized, "Admin access is not configured")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		h.log.Warn("admin login rejected", map[string]interface{}{"username": req.Username})
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	case err != nil:
		writeAppError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
