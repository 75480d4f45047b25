package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/lightnotes/pkg/api"
)

// writeError пишет JSON ответ с ошибкой в формате api.ErrorResponse
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set(api.HeaderContentType, api.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: code, Message: message})
}
