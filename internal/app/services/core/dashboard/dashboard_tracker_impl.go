package dashboard

import (
	"context"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type dashboardTracker struct {
	DashboardUsecase contracts.DashboardUsecase
	Log              *zap.Logger

	mu         sync.Mutex
	baseCtx    context.Context
	baseCancel context.CancelFunc
	identity   string
	generation uint64
	cancel     context.CancelFunc
	inflight   chan struct{}
	state      responses.Dashboard
}

func NewDashboardTracker(dashboardUsecase contracts.DashboardUsecase, logger *zap.Logger) contracts.DashboardTracker {
	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &dashboardTracker{
		DashboardUsecase: dashboardUsecase,
		Log:              logger,
		baseCtx:          baseCtx,
		baseCancel:       baseCancel,
		state:            responses.Dashboard{View: emptyDashboardView()},
	}
}

// SetIdentity starts a dashboard invocation for practitionerID and cancels
// the one of the previous identity. The returned channel is closed once the
// invocation has finished, committed or not. Setting the identity that is
// already loading joins the outstanding invocation.
func (t *dashboardTracker) SetIdentity(practitionerID string) <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inflight != nil && practitionerID == t.identity {
		return t.inflight
	}

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.generation++
	t.identity = practitionerID
	generation := t.generation

	done := make(chan struct{})
	if practitionerID == "" {
		t.inflight = nil
		t.state = responses.Dashboard{View: emptyDashboardView()}
		close(done)
		return done
	}

	ctx, cancel := context.WithCancel(t.baseCtx)
	t.cancel = cancel
	t.inflight = done
	t.state = responses.Dashboard{Loading: true, View: emptyDashboardView()}

	go func() {
		defer close(done)
		defer cancel()

		dashboard, err := t.DashboardUsecase.GetDashboard(ctx, practitionerID)
		t.commit(generation, practitionerID, dashboard, err)
	}()
	return done
}

func (t *dashboardTracker) commit(generation uint64, practitionerID string, dashboard *responses.Dashboard, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation || practitionerID != t.identity {
		t.Log.Info("dashboardTracker.commit stale invocation discarded",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return
	}

	t.inflight = nil
	t.cancel = nil
	if err != nil {
		t.Log.Error("dashboardTracker.commit dashboard failed",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		t.state = responses.Dashboard{Failed: true, View: emptyDashboardView()}
		return
	}

	t.state = *dashboard
}

func (t *dashboardTracker) State() responses.Dashboard {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *dashboardTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.baseCancel()
	t.cancel = nil
}
