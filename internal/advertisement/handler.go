// AngelaMos | 2026
// handler.go

package advertisement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/middleware"
)

type CreateAdvertisementRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Description  string  `json:"description" validate:"required"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url"`
	TargetURL    *string `json:"targetUrl" validate:"omitempty,url"`
	Package      *string `json:"package" validate:"omitempty,max=100"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	ContactEmail string  `json:"contactEmail" validate:"required,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=50"`
	Budget       *int64  `json:"budget" validate:"omitempty,gte=0"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending active inactive"`
	IsActive *bool  `json:"isActive"`
}

type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/advertisements", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireAdmin)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

// RegisterAdminRoutes mounts the moderation listing; the caller wraps
// the router in the auth and admin guards.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/advertisements", h.ListAll)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ads, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list advertisements")
		return
	}

	core.OK(w, ads)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	var req CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), CreateAdvertisement{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		TargetURL:    req.TargetURL,
		Package:      req.Package,
		Company:      req.Company,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Budget:       req.Budget,
	})
	if err != nil {
		h.handleError(w, err, "failed to create advertisement")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid advertisement id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, req.Status, req.IsActive)
	if err != nil {
		h.handleError(w, err, "failed to update advertisement status")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ads, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list all advertisements")
		return
	}

	core.OK(w, ads)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}

	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "Advertisement")
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}
