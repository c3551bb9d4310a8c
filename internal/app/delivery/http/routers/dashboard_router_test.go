package routers

import (
	"errors"
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type dashboardEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    responses.Dashboard `json:"data"`
}

func newDashboardRouter(dashboardUsecase *MockDashboardUsecase, sessionService *MockSessionService) *chi.Mux {
	mw := newTestMiddlewares(sessionService)
	router := chi.NewRouter()
	SetupRoutes(
		router,
		mw.InternalConfig,
		mw,
		controllers.NewDashboardController(zap.NewNop(), dashboardUsecase, mw.InternalConfig),
		controllers.NewTherapistController(zap.NewNop(), new(MockTherapistUsecase)),
	)
	return router
}

func TestDashboardRouter_GetDashboard(t *testing.T) {
	t.Run("without identity answers not ready", func(t *testing.T) {
		dashboardUsecase := new(MockDashboardUsecase)
		dashboardUsecase.On("GetDashboard", mock.Anything, "").Return(&responses.Dashboard{View: &responses.DashboardView{}}, nil)
		router := newDashboardRouter(dashboardUsecase, new(MockSessionService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body dashboardEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Data.Ready)
		assert.Equal(t, constvars.GetDashboardNotReadyMessage, body.Message)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		dashboardUsecase.AssertExpectations(t)
	})

	t.Run("with session uses the practitioner id", func(t *testing.T) {
		dashboardUsecase := new(MockDashboardUsecase)
		sessionService := new(MockSessionService)
		view := &responses.DashboardView{Summary: responses.DashboardSummary{PatientCount: 4}}
		dashboardUsecase.On("GetDashboard", mock.Anything, "T1").Return(&responses.Dashboard{Ready: true, View: view}, nil)
		router := newDashboardRouter(dashboardUsecase, sessionService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, sessionService, "sess-1", "T1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body dashboardEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Data.Ready)
		assert.Equal(t, 4, body.Data.View.Summary.PatientCount)
		dashboardUsecase.AssertExpectations(t)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		dashboardUsecase := new(MockDashboardUsecase)
		router := newDashboardRouter(dashboardUsecase, new(MockSessionService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		dashboardUsecase.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
	})

	t.Run("fetch failure answers bad gateway", func(t *testing.T) {
		dashboardUsecase := new(MockDashboardUsecase)
		sessionService := new(MockSessionService)
		fetchErr := exceptions.ErrDashboardFetch(errors.New("store down"), constvars.DashboardFetcherRecentMessages)
		dashboardUsecase.On("GetDashboard", mock.Anything, "T1").Return(nil, fetchErr)
		router := newDashboardRouter(dashboardUsecase, sessionService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, sessionService, "sess-1", "T1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientDashboardUnavailable, body.ClientMessage)
	})
}

func TestDashboardRouter_GetDashboardSummary(t *testing.T) {
	dashboardUsecase := new(MockDashboardUsecase)
	sessionService := new(MockSessionService)
	dashboardUsecase.On("GetDashboardSummary", mock.Anything, "T1").Return(&responses.DashboardSummary{PendingRequestCount: 2, UnreadMessageCount: 1}, nil)
	router := newDashboardRouter(dashboardUsecase, sessionService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, sessionService, "sess-2", "T1"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data responses.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.PendingRequestCount)
	assert.Equal(t, 1, body.Data.UnreadMessageCount)
}
