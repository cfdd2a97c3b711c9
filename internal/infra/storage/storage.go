// Package storage holds the key-value primitives the card store persists through.
// Every backend stores opaque byte values under string keys and reads an absent
// key as (nil, nil).
package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks a failure of the storage primitive itself.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrQuotaExceeded is returned by quota-limited backends. It wraps ErrUnavailable.
	ErrQuotaExceeded = fmt.Errorf("%w: quota exceeded", ErrUnavailable)
)

// Driver names accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
