package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"curiocart/internal/middleware"
	"curiocart/internal/models"
	"curiocart/internal/services"
)

// AuthHandler handles the owner login.
type AuthHandler struct {
	log   *slog.Logger
	auth  *services.AuthService
	store sessions.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(log *slog.Logger, auth *services.AuthService, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		log:   log,
		auth:  auth,
		store: store,
	}
}

// Login checks the submitted credentials. Success marks the session as admin
// and renders the owner dashboard; anything else redirects to the failure
// page with the session untouched.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &models.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := req.Validate(); err != nil {
		http.Redirect(w, r, "/login-fail", http.StatusSeeOther)
		return
	}

	if err := h.auth.Login(req.Username, req.Password); err != nil {
		http.Redirect(w, r, "/login-fail", http.StatusSeeOther)
		return
	}

	if err := middleware.SetAdmin(h.store, w, r); err != nil {
		h.log.Warn("failed to save admin session", "error", err)
	}
	render(w, http.StatusOK, "owner_dashboard.html", nil)
}
