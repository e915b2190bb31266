package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestAuthenticate(t *testing.T) {
	secret := "unit-test-secret"
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: secret}}

	t.Run("Missing Authorization Header Returns 401", func(t *testing.T) {
		mws := NewMiddlewares(zap.NewNop(), new(MockSessionService), internalConfig)

		handler := mws.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run without a token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Malformed Token Returns 401", func(t *testing.T) {
		mws := NewMiddlewares(zap.NewNop(), new(MockSessionService), internalConfig)

		handler := mws.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run with a malformed token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired Session Returns 401", func(t *testing.T) {
		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-gone").
			Return("", errors.New("redis: nil"))
		mws := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

		token, err := utils.GenerateJWT("session-gone", secret, 5)
		assert.NoError(t, err)

		handler := mws.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run when the session is gone")
		}))

		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		sessionService.AssertExpectations(t)
	})

	t.Run("Valid Token Puts Session Data In Context", func(t *testing.T) {
		sessionData := `{"session_id":"session-123","user_id":7,"username":"doctor"}`
		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-123").Return(sessionData, nil)
		mws := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

		token, err := utils.GenerateJWT("session-123", secret, 5)
		assert.NoError(t, err)

		var seen string
		handler := mws.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, sessionData, seen)
		sessionService.AssertExpectations(t)
	})
}
