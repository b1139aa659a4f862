package ratelimit

import "context"

// Limiter decides whether a client identified by a stable string key
// may spend another submission slot. Implementations must make the
// check-and-increment atomic per key: two concurrent calls for the
// same key must not both succeed when only one slot remains.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
