package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	// TryLock returns whether key was acquired and, when it was, the owner
	// token Unlock expects.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, owner string) error
}
