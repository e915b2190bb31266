package routers

import (
	"net/http"
	"testing"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPatientRoutes(t *testing.T) {
	mws := middlewares.NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})
	controller := &patients.PatientController{Log: zap.NewNop()}

	router := chi.NewRouter()
	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, mws, controller)
	})

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"List", http.MethodGet, "/patients/"},
		{"Create", http.MethodPost, "/patients/"},
		{"Read", http.MethodGet, "/patients/1"},
		{"Update", http.MethodPut, "/patients/1"},
		{"Delete", http.MethodDelete, "/patients/1"},
		{"Dynamics", http.MethodGet, "/patients/1/dynamics"},
		{"Medical Tests", http.MethodGet, "/patients/1/medical-tests"},
		{"Episodes", http.MethodGet, "/patients/1/episodes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			assert.True(t, router.Match(rctx, tc.method, tc.path))
		})
	}

	t.Run("Short Tests Path Is Not Routed", func(t *testing.T) {
		rctx := chi.NewRouteContext()
		assert.False(t, router.Match(rctx, http.MethodGet, "/patients/1/tests"))
	})
}
