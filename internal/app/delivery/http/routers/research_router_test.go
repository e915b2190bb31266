package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/app/services/core/research"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
	"clinregistry-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockResearchUsecase struct {
	mock.Mock
}

func (m *MockResearchUsecase) Query(ctx context.Context, request *requests.ResearchQuery) (*responses.ResearchReport, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ResearchReport), args.Error(1)
}

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

func newResearchTestRouter(t *testing.T, usecase *MockResearchUsecase, sessionService *MockSessionService) (*chi.Mux, string) {
	t.Helper()

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "unit-test-secret"},
	}
	token, err := utils.GenerateJWT("session-123", internalConfig.JWT.Secret, 5)
	assert.NoError(t, err)

	mws := middlewares.NewMiddlewares(zap.NewNop(), sessionService, internalConfig)
	controller := research.NewResearchController(zap.NewNop(), usecase)

	router := chi.NewRouter()
	router.Route("/research", func(r chi.Router) {
		attachResearchRoutes(r, mws, controller)
	})
	return router, token
}

func TestResearchRouter_Query(t *testing.T) {
	t.Run("Missing Token Returns 401", func(t *testing.T) {
		router, _ := newResearchTestRouter(t, new(MockResearchUsecase), new(MockSessionService))

		req := httptest.NewRequest(http.MethodGet, "/research/query?param_codes=temp", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Missing Param Codes Returns 400", func(t *testing.T) {
		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-123").Return(`{"user_id":1}`, nil)
		router, token := newResearchTestRouter(t, new(MockResearchUsecase), sessionService)

		req := httptest.NewRequest(http.MethodGet, "/research/query", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Returns Nested JSON By Default", func(t *testing.T) {
		usecase := new(MockResearchUsecase)
		usecase.On("Query", mock.Anything, mock.MatchedBy(func(request *requests.ResearchQuery) bool {
			return len(request.ParamCodes) == 2
		})).Return(&responses.ResearchReport{Patients: []responses.ResearchPatient{}}, nil)

		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-123").Return(`{"user_id":1}`, nil)
		router, token := newResearchTestRouter(t, usecase, sessionService)

		req := httptest.NewRequest(http.MethodGet, "/research/query?param_codes=temp&param_codes=hb", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, recorder.Body.String(), `"patients"`)
		usecase.AssertExpectations(t)
	})

	t.Run("Format CSV Returns Attachment", func(t *testing.T) {
		usecase := new(MockResearchUsecase)
		usecase.On("Query", mock.Anything, mock.Anything).
			Return(&responses.ResearchReport{Patients: []responses.ResearchPatient{
				{ID: 1, LastName: "Ivanova", FirstName: "Anna", DateOfBirth: "1970-05-20",
					Observations: []responses.ResearchObservation{}},
			}}, nil)

		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-123").Return(`{"user_id":1}`, nil)
		router, token := newResearchTestRouter(t, usecase, sessionService)

		req := httptest.NewRequest(http.MethodGet, "/research/query?param_codes=temp&format=csv", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "research_export.csv")
		assert.Contains(t, recorder.Body.String(), "patient_id,last_name")
		assert.Contains(t, recorder.Body.String(), "Ivanova")
	})
}
