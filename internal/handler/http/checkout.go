package http

import (
	"log/slog"
	"net/http"

	"github.com/pauloargenal/e-commerce-deployed/internal/service"
	"github.com/pauloargenal/e-commerce-deployed/pkg/httputil"
	"github.com/pauloargenal/e-commerce-deployed/pkg/validator"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// ApplyPromoRequest is the JSON request body for applying a promo code.
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// GetCheckout handles GET /api/v1/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCheckout(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// ApplyPromo handles POST /api/v1/checkout/promo. An unknown code still
// returns 200: the outcome lives in the checkout state's promoError field.
func (h *CheckoutHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req ApplyPromoRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	view, err := h.service.ApplyPromo(r.Context(), sessionIDFromContext(r.Context()),
		service.ApplyPromoInput{Code: req.Code})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// RemovePromo handles DELETE /api/v1/checkout/promo
func (h *CheckoutHandler) RemovePromo(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemovePromo(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Complete handles POST /api/v1/checkout/complete
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.service.Complete(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: receipt})
}

// Acknowledge handles POST /api/v1/checkout/acknowledge
func (h *CheckoutHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Acknowledge(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
