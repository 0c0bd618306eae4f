package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the Redis wrapper the usecases depend on. A nil
// Cache is always legal; callers treat it as a permanent miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// AdminNotifier pushes admin mutation events to connected dashboard
// clients. Implemented by the websocket hub.
type AdminNotifier interface {
	Broadcast(event string, payload any)
}
