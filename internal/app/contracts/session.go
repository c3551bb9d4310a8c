package contracts

import (
	"context"
	"mindcare-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
