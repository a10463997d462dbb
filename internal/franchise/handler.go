// AngelaMos | 2026
// handler.go

package franchise

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/inquiry"
	"github.com/b2bmarket/backend/internal/middleware"
	"github.com/b2bmarket/backend/internal/search"
)

type Handler struct {
	service   *Service
	inquiries *inquiry.Service
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewHandler(service *Service, inquiries *inquiry.Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		inquiries: inquiries,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/franchises", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Post("/{id}/inquire", h.Inquire)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireAdmin)
			r.Patch("/{id}/status", h.UpdateActive)
		})
	})
}

// RegisterAdminRoutes mounts the moderation listing; the caller wraps
// the router in the auth and admin guards.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/franchises", h.ListAll)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	franchises, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list franchises")
		return
	}

	core.OK(w, franchises)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	results, err := h.service.Search(r.Context(), search.FranchiseCriteria{
		Category:   q.Get("category"),
		Country:    q.Get("country"),
		State:      q.Get("state"),
		PriceRange: q.Get("priceRange"),
	})
	if err != nil {
		h.handleError(w, err, "failed to search franchises")
		return
	}

	core.OK(w, results)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid franchise id")
		return
	}

	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "failed to get franchise")
		return
	}

	core.OK(w, f)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFranchiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), CreateFranchise{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Country:         req.Country,
		State:           req.State,
		InvestmentRange: req.InvestmentRange,
		ImageURL:        req.ImageURL,
		ContactEmail:    req.ContactEmail,
		InvestmentMin:   req.InvestmentMin,
		InvestmentMax:   req.InvestmentMax,
	})
	if err != nil {
		h.handleError(w, err, "failed to create franchise")
		return
	}

	core.Created(w, created)
}

// Inquire attaches a visitor inquiry to an existing franchise. Missing
// listings 404 before anything is stored.
func (h *Handler) Inquire(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid franchise id")
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		h.handleError(w, err, "failed to get franchise for inquiry")
		return
	}

	var req inquiry.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.inquiries.Create(r.Context(), inquiry.CreateInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		FranchiseID: &id,
	})
	if err != nil {
		h.handleError(w, err, "failed to create franchise inquiry")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateActive(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid franchise id")
		return
	}

	var req UpdateActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		h.handleError(w, err, "failed to update franchise status")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	franchises, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list all franchises")
		return
	}

	core.OK(w, franchises)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}

	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "Franchise")
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
