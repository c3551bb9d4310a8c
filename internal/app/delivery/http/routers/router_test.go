package routers

import (
	"context"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, practitionerID string) (*responses.Dashboard, error) {
	args := m.Called(ctx, practitionerID)
	dashboard, _ := args.Get(0).(*responses.Dashboard)
	return dashboard, args.Error(1)
}

func (m *MockDashboardUsecase) GetDashboardSummary(ctx context.Context, practitionerID string) (*responses.DashboardSummary, error) {
	args := m.Called(ctx, practitionerID)
	summary, _ := args.Get(0).(*responses.DashboardSummary)
	return summary, args.Error(1)
}

type MockTherapistUsecase struct {
	mock.Mock
}

func (m *MockTherapistUsecase) RegisterTherapist(ctx context.Context, request *requests.RegisterTherapist) (*responses.RegisterTherapist, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterTherapist)
	return result, args.Error(1)
}

func (m *MockTherapistUsecase) GetTherapistProfile(ctx context.Context, userID string) (*responses.TherapistProfile, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(0).(*responses.TherapistProfile)
	return result, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix:                "/api",
			Version:                       "v1",
			MaxRequests:                   1000,
			MaxTimeRequestsPerSeconds:     1,
			RequestBodyLimitInMegabyte:    1,
			DocstoreQueryTimeoutInSeconds: 5,
		},
		JWT: config.AppJWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}
}

func newTestMiddlewares(sessionService *MockSessionService) *middlewares.Middlewares {
	return middlewares.NewMiddlewares(zap.NewNop(), sessionService, newTestInternalConfig())
}

// bearerFor registers a therapist session for practitionerID on the mock and
// returns a matching Authorization header value.
func bearerFor(t *testing.T, sessionService *MockSessionService, sessionID, practitionerID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testJWTSecret, 1)
	require.NoError(t, err)

	sessionData := `{"session_id":"` + sessionID + `"}`
	sessionService.On("GetSessionData", mock.Anything, sessionID).Return(sessionData, nil)
	sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(&models.Session{
		SessionID:      sessionID,
		UserID:         practitionerID,
		PractitionerID: practitionerID,
		Role:           constvars.RoleTherapist,
	}, nil)
	return constvars.AuthorizationBearerPrefix + token
}
