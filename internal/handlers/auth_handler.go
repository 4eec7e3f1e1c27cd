package handlers

import (
	"net/http"

	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/middleware"
	"github.com/Varun5711/inotebook/internal/models"
	"github.com/Varun5711/inotebook/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// CreateUser handles POST /api/auth/createuser.
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, models.AuthTokenResponse{AuthToken: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.auth.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, models.AuthTokenResponse{AuthToken: token})
}

// GetUser handles GET /api/auth/getuser.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.WhoAmI(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
