package middlewares

import (
	"net/http"

	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Recoverer converts a handler panic into a plain 500 response instead of
// tearing down the connection.
func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Any("panic", recovered),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"panic recovered in handler",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
