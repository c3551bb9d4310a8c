package dashboard

import (
	"context"
	"errors"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func wrapFetchError(err error, fetcher string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(exceptions.ErrDashboardFetch(err, fetcher))
	}
	return exceptions.ErrDashboardFetch(err, fetcher)
}

// find runs a single store query under the configured per-query timeout.
func (uc *dashboardUsecase) find(ctx context.Context, query contracts.Query) ([]models.Document, error) {
	timeout := time.Duration(uc.InternalConfig.App.DocstoreQueryTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = constvars.DefaultDocstoreQueryTimeoutInSeconds * time.Second
	}

	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return uc.DocumentStore.Find(queryCtx, query)
}

func (uc *dashboardUsecase) fetchPendingRequests(ctx context.Context, practitionerID string) ([]models.Appointment, error) {
	docs, err := uc.find(ctx, contracts.Query{
		Path: []string{constvars.MongoCollectionAppointments},
		Filters: []contracts.Filter{
			{Field: constvars.AppointmentFieldTherapistID, Op: contracts.FilterOpEqual, Value: practitionerID},
			{Field: constvars.AppointmentFieldStatus, Op: contracts.FilterOpEqual, Value: constvars.AppointmentStatusPending},
		},
		OrderBy: []contracts.Order{{Field: constvars.AppointmentFieldCreatedAt, Descending: true}},
		Limit:   uc.InternalConfig.Dashboard.PendingLimit,
	})
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		appointments = append(appointments, models.AppointmentFromDocument(doc))
	}
	return appointments, nil
}

// fetchUpcomingAppointments returns confirmed sessions on or after today in
// (date, time) order. Stores without compound ordering are queried unordered
// and sorted here before the limit applies.
func (uc *dashboardUsecase) fetchUpcomingAppointments(ctx context.Context, practitionerID, today string) ([]models.Appointment, error) {
	limit := uc.InternalConfig.Dashboard.UpcomingLimit
	query := contracts.Query{
		Path: []string{constvars.MongoCollectionAppointments},
		Filters: []contracts.Filter{
			{Field: constvars.AppointmentFieldTherapistID, Op: contracts.FilterOpEqual, Value: practitionerID},
			{Field: constvars.AppointmentFieldDate, Op: contracts.FilterOpGreaterOrEqual, Value: today},
			{
				Field: constvars.AppointmentFieldStatus,
				Op:    contracts.FilterOpIn,
				Value: []string{constvars.AppointmentStatusScheduled, constvars.AppointmentStatusAccepted},
			},
		},
	}

	compoundOrder := uc.DocumentStore.SupportsCompoundOrder()
	if compoundOrder {
		query.OrderBy = []contracts.Order{
			{Field: constvars.AppointmentFieldDate},
			{Field: constvars.AppointmentFieldTime},
		}
		query.Limit = limit
	}

	docs, err := uc.find(ctx, query)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		appointments = append(appointments, models.AppointmentFromDocument(doc))
	}

	if !compoundOrder {
		sort.SliceStable(appointments, func(i, j int) bool {
			if appointments[i].Date != appointments[j].Date {
				return appointments[i].Date < appointments[j].Date
			}
			return appointments[i].Time < appointments[j].Time
		})
		if limit > 0 && len(appointments) > limit {
			appointments = appointments[:limit]
		}
	}
	return appointments, nil
}

func (uc *dashboardUsecase) countPatients(ctx context.Context, practitionerID string) (int, error) {
	docs, err := uc.find(ctx, contracts.Query{
		Path: []string{constvars.MongoCollectionAppointments},
		Filters: []contracts.Filter{
			{Field: constvars.AppointmentFieldTherapistID, Op: contracts.FilterOpEqual, Value: practitionerID},
		},
	})
	if err != nil {
		return 0, err
	}

	patients := make(map[string]struct{})
	for _, doc := range docs {
		patientID := doc.String(constvars.AppointmentFieldPatientID)
		if patientID == "" {
			continue
		}
		patients[patientID] = struct{}{}
	}
	return len(patients), nil
}

func (uc *dashboardUsecase) fetchRecentMessages(ctx context.Context, practitionerID string, now time.Time) ([]models.Message, error) {
	conversations, err := uc.fetchConversations(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if len(conversations) == 0 {
		return []models.Message{}, nil
	}

	perConversation := make([][]models.Message, len(conversations))

	g, gctx := errgroup.WithContext(ctx)
	for i, conversation := range conversations {
		i, conversation := i, conversation
		g.Go(func() error {
			messages, err := uc.fetchConversationMessages(gctx, conversation.ID, practitionerID, now)
			if err != nil {
				return err
			}
			perConversation[i] = messages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]models.Message, 0)
	for _, messages := range perConversation {
		merged = append(merged, messages...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	if limit := uc.InternalConfig.Dashboard.RecentMessageLimit; limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// fetchConversations returns the scanned conversation window restricted to
// the ones practitionerID takes part in.
func (uc *dashboardUsecase) fetchConversations(ctx context.Context, practitionerID string) ([]models.Conversation, error) {
	query := contracts.Query{
		Path:  []string{constvars.MongoCollectionChats},
		Limit: uc.InternalConfig.Dashboard.ConversationScanLimit,
	}
	if !uc.InternalConfig.Dashboard.LegacyConversationScan {
		query.Filters = []contracts.Filter{
			{Field: constvars.ConversationFieldParticipants, Op: contracts.FilterOpArrayContains, Value: practitionerID},
		}
	}

	docs, err := uc.find(ctx, query)
	if err != nil {
		return nil, err
	}

	conversations := make([]models.Conversation, 0, len(docs))
	for _, doc := range docs {
		conversation := models.ConversationFromDocument(doc)
		if !conversation.HasParticipant(practitionerID) {
			continue
		}
		conversations = append(conversations, conversation)
	}

	uc.Log.Debug("dashboardUsecase.fetchConversations conversations scanned",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingConversationsKey, len(conversations)),
	)
	return conversations, nil
}

func (uc *dashboardUsecase) fetchConversationMessages(ctx context.Context, conversationID, practitionerID string, now time.Time) ([]models.Message, error) {
	docs, err := uc.find(ctx, contracts.Query{
		Path:    []string{constvars.MongoCollectionChats, conversationID, constvars.MongoCollectionMessages},
		OrderBy: []contracts.Order{{Field: constvars.MessageFieldTimestamp, Descending: true}},
		Limit:   uc.InternalConfig.Dashboard.MessagesPerConversation,
	})
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(docs))
	for _, doc := range docs {
		message := models.MessageFromDocument(conversationID, doc, now)
		if message.ReceiverID != practitionerID {
			continue
		}
		messages = append(messages, message)
	}

	uc.Log.Debug("dashboardUsecase.fetchConversationMessages messages received",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
		zap.Int(constvars.LoggingMessagesKey, len(messages)),
	)
	return messages, nil
}
