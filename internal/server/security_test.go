package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector(), "/media")

	tests := []struct {
		name           string
		headerKey      string
		target         string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/inventories", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/inventories", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/inventories", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
		{"Media Files", "", "/media/weapons/w1.png", http.StatusOK},
		{"Query Key On Event Stream", "", "/api/v1/events?api_key=" + apiKey, http.StatusOK},
		{"Query Key On WebSocket", "", "/ws?api_key=" + apiKey, http.StatusOK},
		{"Wrong Query Key On WebSocket", "", "/ws?api_key=nope", http.StatusUnauthorized},
		{"Query Key Ignored Elsewhere", "", "/api/v1/inventories?api_key=" + apiKey, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.headerKey != "" {
				req.Header.Set(HeaderAPIKey, tt.headerKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_MediaOpenOnlyWhenServed(t *testing.T) {
	middleware := AuthMiddleware("k", nil, NewSuspiciousActivityDetector(), "")
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/weapons/w1.png", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "203.0.113.9, 198.51.100.7")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil), "untrusted peer cannot spoof the forwarded header")
	assert.Equal(t, "198.51.100.7", extractIP(req, []string{"10.0.0.1"}))
}
