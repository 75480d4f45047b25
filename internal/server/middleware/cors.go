package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/iudanet/lightnotes/pkg/api"
)

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsHeaders = strings.Join([]string{
		api.HeaderAuth, api.HeaderContentType, api.HeaderIfMatch, api.HeaderIfNoneMatch,
	}, ", ")
)

// CORSMiddleware разрешает кросс-доменные запросы с перечисленных origin.
// "*" разрешает любой origin. ETag отдается браузеру через Access-Control-Expose-Headers.
// Preflight запросы завершаются здесь, до аутентификации.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || (!allowAny && !slices.Contains(origins, origin)) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Expose-Headers", api.HeaderETag)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
