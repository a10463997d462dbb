// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/middleware"
)

type Handler struct {
	service    *Service
	validate   *validator.Validate
	logger     *slog.Logger
	session    config.SessionConfig
	production bool
}

func NewHandler(service *Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		service:    service,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
		session:    cfg.Session,
		production: cfg.IsProduction(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.Me)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "registration failed")
		return
	}

	h.setSessionCookie(w, result.SessionID)
	core.Created(w, AuthResponse{
		User:  NewUserResponse(result.User),
		Token: result.Token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "login failed")
		return
	}

	h.setSessionCookie(w, result.SessionID)
	core.OK(w, AuthResponse{
		User:  NewUserResponse(result.User),
		Token: result.Token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.ExtractSessionID(r, h.session.CookieName)

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		h.logger.Error("failed to destroy session", "error", err)
	}

	h.clearSessionCookie(w)
	core.OK(w, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	core.OK(w, map[string]any{
		"id":        identity.UserID,
		"email":     identity.Email,
		"firstName": identity.FirstName,
		"lastName":  identity.LastName,
		"role":      identity.Role,
	})
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		h.handleError(w, err, "forgot password failed")
		return
	}

	core.OK(w, map[string]string{
		"message": "If an account with that email exists, a password reset link has been sent",
	})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		h.handleError(w, err, "password reset failed")
		return
	}

	core.OK(w, map[string]string{"message": "Password has been reset successfully"})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}
