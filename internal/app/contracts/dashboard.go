package contracts

import (
	"context"
	"mindcare-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, practitionerID string) (*responses.Dashboard, error)
	GetDashboardSummary(ctx context.Context, practitionerID string) (*responses.DashboardSummary, error)
}

// DashboardTracker re-runs the dashboard whenever the practitioner identity
// changes and keeps the state of the latest identity only.
type DashboardTracker interface {
	SetIdentity(practitionerID string) <-chan struct{}
	State() responses.Dashboard
	Close()
}
