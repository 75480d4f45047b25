package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/lightnotes/internal/server/handlers"
	"github.com/iudanet/lightnotes/pkg/api"
)

// AuthMiddleware создает middleware для проверки bearer токена клиента
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(api.HeaderAuth)
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
				logger.Warn("Invalid Authorization header format")
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token format")
				return
			}

			claims, err := handlers.ValidateToken(jwtConfig, strings.TrimSpace(tokenString))
			if err != nil {
				logger.Warn("Invalid token", "error", err)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			logger.Debug("Client authenticated", "client", claims.Client)

			next.ServeHTTP(w, r.WithContext(handlers.WithClient(r.Context(), claims.Client)))
		})
	}
}
