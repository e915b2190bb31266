package middlewares

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLimitRequestBody(t *testing.T) {
	internalConfig := &config.InternalConfig{
		App: config.App{
			RequestBodyLimitInMB:     1,
			MedicalTestMaxUploadInMB: 4,
		},
	}
	mws := NewMiddlewares(zap.NewNop(), new(MockSessionService), internalConfig)

	readAll := func(readErr *error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, *readErr = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("Small JSON Body Passes", func(t *testing.T) {
		var readErr error
		handler := mws.LimitRequestBody(readAll(&readErr))

		req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader(make([]byte, 1024)))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.NoError(t, readErr)
	})

	t.Run("Oversized JSON Body Is Cut Off", func(t *testing.T) {
		var readErr error
		handler := mws.LimitRequestBody(readAll(&readErr))

		req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader(make([]byte, 2<<20)))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Error(t, readErr, "reads past the configured limit must fail")
	})

	t.Run("Multipart Upload Gets The Larger Budget", func(t *testing.T) {
		var readErr error
		handler := mws.LimitRequestBody(readAll(&readErr))

		req := httptest.NewRequest(http.MethodPost, "/medical-tests", bytes.NewReader(make([]byte, 2<<20)))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEMultipartForm+"; boundary=xyz")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.NoError(t, readErr, "the same size must fit under the upload budget")
	})
}
