// AngelaMos | 2026
// handler.go

package business

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
	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.Get)
		r.Post("/{id}/inquire", h.Inquire)

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
	r.Get("/businesses", h.ListAll)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list businesses")
		return
	}

	core.OK(w, businesses)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// An unparseable maxPrice leaves the criterion unset rather than
	// failing the request.
	maxPrice, _ := strconv.ParseInt(q.Get("maxPrice"), 10, 64)

	results, err := h.service.Search(r.Context(), search.BusinessCriteria{
		Category: q.Get("category"),
		Country:  q.Get("country"),
		State:    q.Get("state"),
		MaxPrice: maxPrice,
	})
	if err != nil {
		h.handleError(w, err, "failed to search businesses")
		return
	}

	core.OK(w, results)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid business id")
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "failed to get business")
		return
	}

	core.OK(w, b)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	var req CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), CreateBusiness{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Country:         req.Country,
		State:           req.State,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		ContactEmail:    req.ContactEmail,
		Package:         req.Package,
		YearEstablished: req.YearEstablished,
		Employees:       req.Employees,
		Revenue:         req.Revenue,
		Reason:          req.Reason,
		Assets:          req.Assets,
	})
	if err != nil {
		h.handleError(w, err, "failed to create business")
		return
	}

	core.Created(w, created)
}

// Inquire attaches a visitor inquiry to an existing business. Missing
// listings 404 before anything is stored.
func (h *Handler) Inquire(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid business id")
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		h.handleError(w, err, "failed to get business for inquiry")
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
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		BusinessID: &id,
	})
	if err != nil {
		h.handleError(w, err, "failed to create business inquiry")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		core.BadRequest(w, "Invalid business id")
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
		h.handleError(w, err, "failed to update business status")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err, "failed to list all businesses")
		return
	}

	core.OK(w, businesses)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}

	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "Business")
		return
	}

	h.logger.Error(logMsg, "error", err)
	core.InternalServerError(w, "An unexpected error occurred")
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
