package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		origins       []string
		method        string
		origin        string
		preflight     bool
		wantStatus    int
		wantAllowed   string
		wantExposeTag bool
	}{
		{
			name:       "no origin header",
			origins:    []string{"https://app.example"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:          "allowed origin",
			origins:       []string{"https://app.example"},
			method:        http.MethodGet,
			origin:        "https://app.example",
			wantStatus:    http.StatusOK,
			wantAllowed:   "https://app.example",
			wantExposeTag: true,
		},
		{
			name:       "unknown origin",
			origins:    []string{"https://app.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:          "wildcard",
			origins:       []string{"*"},
			method:        http.MethodPut,
			origin:        "https://any.example",
			wantStatus:    http.StatusOK,
			wantAllowed:   "https://any.example",
			wantExposeTag: true,
		},
		{
			name:          "preflight",
			origins:       []string{"https://app.example"},
			method:        http.MethodOptions,
			origin:        "https://app.example",
			preflight:     true,
			wantStatus:    http.StatusNoContent,
			wantAllowed:   "https://app.example",
			wantExposeTag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORSMiddleware(tt.origins)(okHandler)

			req := httptest.NewRequest(tt.method, "/index.json", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantExposeTag {
				assert.Equal(t, "ETag", w.Header().Get("Access-Control-Expose-Headers"))
			}
			if tt.preflight {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "If-Match")
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "If-None-Match")
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			}
		})
	}
}
