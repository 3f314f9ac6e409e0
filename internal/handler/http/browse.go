package http

import (
	"log/slog"
	"net/http"

	"github.com/pauloargenal/e-commerce-deployed/internal/service"
	"github.com/pauloargenal/e-commerce-deployed/pkg/httputil"
	"github.com/pauloargenal/e-commerce-deployed/pkg/validator"
)

// BrowseHandler handles HTTP requests for the per-session product listing view.
type BrowseHandler struct {
	service *service.BrowseService
	logger  *slog.Logger
}

// NewBrowseHandler creates a new browse HTTP handler.
func NewBrowseHandler(svc *service.BrowseService, logger *slog.Logger) *BrowseHandler {
	return &BrowseHandler{
		service: svc,
		logger:  logger,
	}
}

// SetFiltersRequest is the JSON request body for updating browse filters.
// Omitted fields keep their current values.
type SetFiltersRequest struct {
	Search    *string `json:"search"`
	Category  *string `json:"category"`
	SortBy    *string `json:"sortBy" validate:"omitempty,oneof=title price rating stock"`
	SortOrder *string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// GetView handles GET /api/v1/browse
func (h *BrowseHandler) GetView(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetView(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// SetFilters handles PUT /api/v1/browse/filters
func (h *BrowseHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req SetFiltersRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	view, err := h.service.SetFilters(r.Context(), sessionIDFromContext(r.Context()), service.SetFiltersInput{
		Search:    req.Search,
		Category:  req.Category,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// ClearFilters handles DELETE /api/v1/browse/filters
func (h *BrowseHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ClearFilters(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Refresh handles POST /api/v1/browse/refresh
func (h *BrowseHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Refresh(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
