package session

import (
	"context"
	"errors"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		now:             time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	return svc.RedisRepository.Set(ctx, session.SessionID, session, exp)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrRedisGetNoData(errors.New(constvars.ErrDevAuthInvalidSession), sessionID)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}

	if session.IsExpired(svc.now()) {
		return nil, exceptions.ErrInvalidSession(errors.New(constvars.ErrDevAuthTokenInvalidOrExpired))
	}
	return session, nil
}
