package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit matches the upstream catalog's default page size.
	DefaultLimit = 30
	// MaxLimit caps how many items a single request may ask for.
	MaxLimit = 100
)

// Params holds limit/skip parameters extracted from query strings.
type Params struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

// DefaultParams returns the default page window.
func DefaultParams() Params {
	return Params{
		Limit: DefaultLimit,
		Skip:  0,
	}
}

// FromRequest extracts limit/skip parameters from an HTTP request.
// Invalid or out-of-range values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 && v <= MaxLimit {
			p.Limit = v
		}
	}

	if skip := r.URL.Query().Get("skip"); skip != "" {
		if v, err := strconv.Atoi(skip); err == nil && v >= 0 {
			p.Skip = v
		}
	}

	return p
}
