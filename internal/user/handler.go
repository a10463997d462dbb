// AngelaMos | 2026
// handler.go

package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/b2bmarket/backend/internal/advertisement"
	"github.com/b2bmarket/backend/internal/business"
	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/middleware"
)

type Handler struct {
	repo       Repository
	businesses *business.Service
	ads        *advertisement.Service
	logger     *slog.Logger
}

func NewHandler(
	repo Repository,
	businesses *business.Service,
	ads *advertisement.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		repo:       repo,
		businesses: businesses,
		ads:        ads,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.Me)
		r.Get("/me/businesses", h.MyBusinesses)
		r.Get("/me/advertisements", h.MyAdvertisements)
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	u, err := h.repo.GetByID(r.Context(), userID)
	if err != nil {
		h.handleError(w, err, "failed to get user")
		return
	}

	core.OK(w, u)
}

func (h *Handler) MyBusinesses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	businesses, err := h.businesses.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err, "failed to list user businesses")
		return
	}

	core.OK(w, businesses)
}

func (h *Handler) MyAdvertisements(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	ads, err := h.ads.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err, "failed to list user advertisements")
		return
	}

	core.OK(w, ads)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "User")
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}
