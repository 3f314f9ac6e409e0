package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/products", nil)
	p := FromRequest(req)

	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Skip)
}

func TestFromRequest_ValidParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/products?limit=12&skip=24", nil)
	p := FromRequest(req)

	assert.Equal(t, 12, p.Limit)
	assert.Equal(t, 24, p.Skip)
}

func TestFromRequest_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantSkip  int
	}{
		{"negative limit", "?limit=-5", DefaultLimit, 0},
		{"zero limit", "?limit=0", DefaultLimit, 0},
		{"limit over max", "?limit=500", DefaultLimit, 0},
		{"negative skip", "?skip=-1", DefaultLimit, 0},
		{"non-numeric", "?limit=abc&skip=xyz", DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/products"+tt.query, nil)
			p := FromRequest(req)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantSkip, p.Skip)
		})
	}
}
