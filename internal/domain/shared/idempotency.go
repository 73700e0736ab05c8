package shared

import (
	"context"
	"time"
)

// IdempotencyStore records processed request keys so that retried
// requests (same Idempotency-Key) are not executed twice.
type IdempotencyStore interface {
	// MarkProcessed marks a key as processed with a TTL. It returns true
	// if the key was newly marked, false if it had already been processed.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether a key has already been processed.
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// IdempotencyConfig holds idempotency handling options
type IdempotencyConfig struct {
	// TTL is how long a processed key is remembered. After it expires
	// the same key may be processed again.
	TTL time.Duration

	// Enabled toggles idempotency checking.
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
