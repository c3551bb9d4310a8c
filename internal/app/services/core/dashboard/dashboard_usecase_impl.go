package dashboard

import (
	"context"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	DocumentStore  contracts.DocumentStore
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Location       *time.Location
	Now            func() time.Time
}

func NewDashboardUsecase(
	documentStore contracts.DocumentStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.DashboardUsecase, error) {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, exceptions.ErrDashboardTimezone(err, internalConfig.App.Timezone)
	}

	return &dashboardUsecase{
		DocumentStore:  documentStore,
		InternalConfig: internalConfig,
		Log:            logger,
		Location:       location,
		Now:            time.Now,
	}, nil
}

// GetDashboard builds the full view for practitionerID. An empty identity
// yields an empty, not-ready dashboard without touching the store.
func (uc *dashboardUsecase) GetDashboard(ctx context.Context, practitionerID string) (*responses.Dashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	if practitionerID == "" {
		uc.Log.Info("dashboardUsecase.GetDashboard practitioner identity not resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.Dashboard{View: emptyDashboardView()}, nil
	}

	view, err := uc.buildView(ctx, practitionerID)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error building dashboard view",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("dashboardUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPendingCountKey, view.Summary.PendingRequestCount),
		zap.Int(constvars.LoggingUpcomingCountKey, view.Summary.UpcomingAppointmentCount),
		zap.Int(constvars.LoggingPatientCountKey, view.Summary.PatientCount),
		zap.Int(constvars.LoggingMessageCountKey, len(view.RecentMessages)),
	)
	return &responses.Dashboard{Ready: true, View: view}, nil
}

func (uc *dashboardUsecase) GetDashboardSummary(ctx context.Context, practitionerID string) (*responses.DashboardSummary, error) {
	dashboard, err := uc.GetDashboard(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	summary := dashboard.View.Summary
	return &summary, nil
}

func (uc *dashboardUsecase) buildView(ctx context.Context, practitionerID string) (*responses.DashboardView, error) {
	now := uc.Now()
	today := utils.CalendarDate(now, uc.Location)

	var (
		pending      []models.Appointment
		upcoming     []models.Appointment
		patientCount int
		messages     []models.Message
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := uc.fetchPendingRequests(gctx, practitionerID)
		if err != nil {
			return wrapFetchError(err, constvars.DashboardFetcherPendingRequests)
		}
		pending = result
		return nil
	})
	g.Go(func() error {
		result, err := uc.fetchUpcomingAppointments(gctx, practitionerID, today)
		if err != nil {
			return wrapFetchError(err, constvars.DashboardFetcherUpcomingAppointments)
		}
		upcoming = result
		return nil
	})
	g.Go(func() error {
		result, err := uc.countPatients(gctx, practitionerID)
		if err != nil {
			return wrapFetchError(err, constvars.DashboardFetcherPatientCount)
		}
		patientCount = result
		return nil
	})
	g.Go(func() error {
		result, err := uc.fetchRecentMessages(gctx, practitionerID, now)
		if err != nil {
			return wrapFetchError(err, constvars.DashboardFetcherRecentMessages)
		}
		messages = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assembleView(pending, upcoming, patientCount, messages, now), nil
}

func assembleView(pending, upcoming []models.Appointment, patientCount int, messages []models.Message, generatedAt time.Time) *responses.DashboardView {
	view := emptyDashboardView()
	view.GeneratedAt = generatedAt

	for _, appointment := range pending {
		view.PendingRequests = append(view.PendingRequests, responses.PendingRequest{
			ID:          appointment.ID,
			PatientName: appointment.PatientName,
			Date:        appointment.Date,
			Time:        appointment.Time,
			CreatedAt:   appointment.CreatedAt,
		})
	}

	for _, appointment := range upcoming {
		view.UpcomingAppointments = append(view.UpcomingAppointments, responses.UpcomingAppointment{
			ID:          appointment.ID,
			PatientName: appointment.PatientName,
			Date:        appointment.Date,
			Time:        appointment.Time,
		})
	}

	unread := 0
	for _, message := range messages {
		if !message.Read {
			unread++
		}
		view.RecentMessages = append(view.RecentMessages, responses.RecentMessage{
			ID:             message.ID,
			ConversationID: message.ConversationID,
			SenderID:       message.SenderID,
			SenderName:     message.SenderName,
			Text:           message.Text,
			Timestamp:      message.Timestamp,
			Read:           message.Read,
		})
	}

	// Unread count covers the recent-message window only.
	view.Summary = responses.DashboardSummary{
		PendingRequestCount:      len(view.PendingRequests),
		PatientCount:             patientCount,
		UpcomingAppointmentCount: len(view.UpcomingAppointments),
		UnreadMessageCount:       unread,
	}
	return view
}

func emptyDashboardView() *responses.DashboardView {
	return &responses.DashboardView{
		PendingRequests:      []responses.PendingRequest{},
		UpcomingAppointments: []responses.UpcomingAppointment{},
		RecentMessages:       []responses.RecentMessage{},
	}
}
