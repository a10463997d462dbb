// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/middleware"
)

type CreateIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=1"`
}

type CreateSubscriptionRequest struct {
	PriceID string `json:"priceId" validate:"required"`
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
	r.Route("/payments", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/intent", h.CreateIntent)
		r.Post("/subscription", h.CreateSubscription)
	})
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	if !h.service.Configured() {
		core.ServiceUnavailable(w, "Payment processing is not configured")
		return
	}

	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	clientSecret, err := h.service.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		h.logger.Error("failed to create payment intent", "error", err)
		core.InternalServerError(w, "Error creating payment intent")
		return
	}

	core.OK(w, map[string]string{"clientSecret": clientSecret})
}

func (h *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	if !h.service.Configured() {
		core.ServiceUnavailable(w, "Payment processing is not configured")
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	var req CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	name := fmt.Sprintf("%s %s", identity.FirstName, identity.LastName)

	subID, clientSecret, err := h.service.CreateSubscription(
		r.Context(),
		identity.Email,
		name,
		req.PriceID,
	)
	if err != nil {
		h.logger.Error("failed to create subscription", "error", err)
		core.InternalServerError(w, "Error creating subscription")
		return
	}

	core.OK(w, map[string]string{
		"subscriptionId": subID,
		"clientSecret":   clientSecret,
	})
}
