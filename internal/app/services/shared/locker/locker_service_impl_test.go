package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

const lockKey = "registration_lock:dr.sari@example.com"

func TestRedisLocker_TryLock(t *testing.T) {
	t.Run("acquired returns the owner token", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.AnythingOfType("string"), 10*time.Second).Return(true, nil)
		locker := NewLockerService(redisRepository, zap.NewNop())

		acquired, owner, err := locker.TryLock(context.Background(), lockKey, 10*time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, owner)
		redisRepository.AssertCalled(t, "TrySetNX", mock.Anything, lockKey, owner, 10*time.Second)
	})

	t.Run("held lock is not an error", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.Anything, mock.Anything).Return(false, nil)
		locker := NewLockerService(redisRepository, zap.NewNop())

		acquired, owner, err := locker.TryLock(context.Background(), lockKey, time.Second)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, owner)
	})

	t.Run("redis failure", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))
		locker := NewLockerService(redisRepository, zap.NewNop())

		acquired, _, err := locker.TryLock(context.Background(), lockKey, time.Second)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestRedisLocker_Unlock(t *testing.T) {
	t.Run("owner releases the lock", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return(`"owner-1"`, nil)
		redisRepository.On("Delete", mock.Anything, lockKey).Return(nil)
		locker := NewLockerService(redisRepository, zap.NewNop())

		require.NoError(t, locker.Unlock(context.Background(), lockKey, "owner-1"))
		redisRepository.AssertExpectations(t)
	})

	t.Run("expired lock is a no-op", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return("", nil)
		locker := NewLockerService(redisRepository, zap.NewNop())

		require.NoError(t, locker.Unlock(context.Background(), lockKey, "owner-1"))
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("another owner keeps the lock", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return(`"owner-2"`, nil)
		locker := NewLockerService(redisRepository, zap.NewNop())

		err := locker.Unlock(context.Background(), lockKey, "owner-1")

		assert.Error(t, err)
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
