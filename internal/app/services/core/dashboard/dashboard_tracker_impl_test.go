package dashboard

import (
	"context"
	"errors"
	"mindcare-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func readyDashboard(patientCount int) *responses.Dashboard {
	view := emptyDashboardView()
	view.Summary.PatientCount = patientCount
	return &responses.Dashboard{Ready: true, View: view}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dashboard invocation did not finish")
	}
}

func TestDashboardTracker_CommitsCurrentIdentity(t *testing.T) {
	usecase := new(MockDashboardUsecase)
	usecase.On("GetDashboard", mock.Anything, "T1").Return(readyDashboard(3), nil).Once()
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	waitDone(t, tracker.SetIdentity("T1"))

	state := tracker.State()
	assert.True(t, state.Ready)
	assert.False(t, state.Loading)
	assert.Equal(t, 3, state.View.Summary.PatientCount)
	usecase.AssertExpectations(t)
}

func TestDashboardTracker_StaleInvocationIsDiscarded(t *testing.T) {
	releaseFirst := make(chan time.Time)
	usecase := new(MockDashboardUsecase)
	usecase.On("GetDashboard", mock.Anything, "T1").WaitUntil(releaseFirst).Return(readyDashboard(1), nil).Once()
	usecase.On("GetDashboard", mock.Anything, "T2").Return(readyDashboard(2), nil).Once()
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	first := tracker.SetIdentity("T1")
	assert.True(t, tracker.State().Loading)

	waitDone(t, tracker.SetIdentity("T2"))
	close(releaseFirst)
	waitDone(t, first)

	state := tracker.State()
	assert.True(t, state.Ready)
	assert.Equal(t, 2, state.View.Summary.PatientCount)
	usecase.AssertExpectations(t)
}

func TestDashboardTracker_SameIdentityJoinsInflight(t *testing.T) {
	release := make(chan time.Time)
	usecase := new(MockDashboardUsecase)
	usecase.On("GetDashboard", mock.Anything, "T1").WaitUntil(release).Return(readyDashboard(1), nil).Once()
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	first := tracker.SetIdentity("T1")
	second := tracker.SetIdentity("T1")
	assert.Equal(t, first, second)

	close(release)
	waitDone(t, first)
	usecase.AssertNumberOfCalls(t, "GetDashboard", 1)
}

func TestDashboardTracker_FailureIsTerminal(t *testing.T) {
	usecase := new(MockDashboardUsecase)
	usecase.On("GetDashboard", mock.Anything, "T1").Return(nil, errors.New("store unavailable")).Once()
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	waitDone(t, tracker.SetIdentity("T1"))

	state := tracker.State()
	assert.True(t, state.Failed)
	assert.False(t, state.Loading)
	assert.False(t, state.Ready)
	require.NotNil(t, state.View)
	assert.Empty(t, state.View.PendingRequests)
	assert.Empty(t, state.View.RecentMessages)
}

func TestDashboardTracker_EmptyIdentity(t *testing.T) {
	usecase := new(MockDashboardUsecase)
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	waitDone(t, tracker.SetIdentity(""))

	state := tracker.State()
	assert.False(t, state.Ready)
	assert.False(t, state.Loading)
	assert.False(t, state.Failed)
	usecase.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
}

func TestDashboardTracker_CancelsPreviousInvocation(t *testing.T) {
	cancelled := make(chan struct{})
	usecase := new(MockDashboardUsecase)
	usecase.On("GetDashboard", mock.Anything, "T1").Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		<-ctx.Done()
		close(cancelled)
	}).Return(nil, context.Canceled).Once()
	usecase.On("GetDashboard", mock.Anything, "T2").Return(readyDashboard(2), nil).Once()
	tracker := NewDashboardTracker(usecase, zap.NewNop())
	defer tracker.Close()

	first := tracker.SetIdentity("T1")
	waitDone(t, tracker.SetIdentity("T2"))
	waitDone(t, first)

	select {
	case <-cancelled:
	default:
		t.Fatal("previous invocation was not cancelled")
	}
	assert.True(t, tracker.State().Ready)
	assert.False(t, tracker.State().Failed)
}
