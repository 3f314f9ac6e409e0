package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pauloargenal/e-commerce-deployed/internal/locale"
	"github.com/pauloargenal/e-commerce-deployed/pkg/httputil"
)

// LocaleHandler serves the UI translation dictionary.
type LocaleHandler struct {
	dict   locale.Dictionary
	logger *slog.Logger
}

// NewLocaleHandler creates a new locale HTTP handler.
func NewLocaleHandler(dict locale.Dictionary, logger *slog.Logger) *LocaleHandler {
	return &LocaleHandler{
		dict:   dict,
		logger: logger,
	}
}

// GetDictionary handles GET /api/v1/locale
func (h *LocaleHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.dict})
}

// GetNamespace handles GET /api/v1/locale/{namespace}
func (h *LocaleHandler) GetNamespace(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dict.Namespace(chi.URLParam(r, "namespace"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: entries})
}
