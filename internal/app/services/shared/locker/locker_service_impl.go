package locker

import (
	"context"
	"errors"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type redisLocker struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewLockerService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &redisLocker{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	owner := uuid.NewString()

	acquired, err := l.RedisRepository.TrySetNX(ctx, key, owner, ttl)
	if err != nil {
		l.Log.Error("redisLocker.TryLock error calling RedisRepository.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		l.Log.Info("redisLocker.TryLock lock is held",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	l.Log.Info("redisLocker.TryLock acquired",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockOwnerKey, owner),
		zap.Duration(constvars.LoggingLockTTLKey, ttl),
	)
	return true, owner, nil
}

// Unlock deletes key only while owner still holds it. An expired lock is not
// an error.
func (l *redisLocker) Unlock(ctx context.Context, key, owner string) error {
	requestID := utils.GetRequestID(ctx)

	stored, err := l.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if stored == "" {
		l.Log.Info("redisLocker.Unlock lock already expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	// values go through JSON on the way into redis
	expected, err := json.Marshal(owner)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if stored != string(expected) {
		return exceptions.ErrRedisUnlock(errors.New("lock owner mismatch"), key)
	}

	if err := l.RedisRepository.Delete(ctx, key); err != nil {
		l.Log.Error("redisLocker.Unlock error calling RedisRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}
