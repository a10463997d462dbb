// AngelaMos | 2026
// handler.go

package inquiry

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

type CreateInquiryRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending replied closed"`
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

// RegisterRoutes mounts the contact form publicly and keeps the inbox
// behind the admin guard, since inquiries carry visitor contact details.
func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/inquiries", func(r chi.Router) {
		r.Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireAdmin)

			r.Get("/", h.List)
			r.Get("/{id}", h.Get)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), CreateInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.handleError(w, err, "failed to create inquiry")
		return
	}

	core.Created(w, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list inquiries")
		return
	}

	core.OK(w, inquiries)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid inquiry id")
		return
	}

	inq, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "failed to get inquiry")
		return
	}

	core.OK(w, inq)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid inquiry id")
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

	updated, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleError(w, err, "failed to update inquiry status")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}

	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "Inquiry")
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
