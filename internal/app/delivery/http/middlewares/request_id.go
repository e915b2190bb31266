package middlewares

import (
	"context"
	"net/http"

	"clinregistry-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// RequestID tags every request with an identifier, honoring one supplied by
// an upstream proxy, and echoes it back in the response header.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
