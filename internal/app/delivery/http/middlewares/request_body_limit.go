package middlewares

import (
	"net/http"
	"strings"

	"clinregistry-service/internal/pkg/constvars"
)

// LimitRequestBody caps the request body size. Multipart uploads get the
// medical-test budget plus headroom for the form framing; everything else
// gets the JSON body limit.
func (m *Middlewares) LimitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMB) << 20
		if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
			limit = (m.InternalConfig.App.MedicalTestMaxUploadInMB + 1) << 20
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
