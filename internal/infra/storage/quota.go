package storage

import (
	"context"
	"fmt"
)

// quotaBackend rejects writes larger than max bytes, like browser storage does.
type quotaBackend struct {
	Backend
	max int
}

// WithQuota limits the size of a single value. A non-positive max disables the limit.
func WithQuota(b Backend, max int) Backend {
	if max <= 0 {
		return b
	}
	return &quotaBackend{Backend: b, max: max}
}

func (q *quotaBackend) Set(ctx context.Context, key string, value []byte) error {
	if len(value) > q.max {
		return fmt.Errorf("%w: %d bytes for %q, limit %d", ErrQuotaExceeded, len(value), key, q.max)
	}
	return q.Backend.Set(ctx, key, value)
}
