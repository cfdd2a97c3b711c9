package database

import (
	"context"
	"fmt"
	"time"

	"indi-cards/config"
	"indi-cards/internal/infra/storage"

	log "github.com/sirupsen/logrus"
)

// Store is the storage backend the card store persists through.
var Store storage.Backend

type Options struct {
	Driver     string
	Path       string
	DSN        string
	RedisURL   string
	QuotaBytes int
}

// Open builds the backend for opts.Driver and applies the quota.
func Open(ctx context.Context, opts Options) (storage.Backend, error) {
	var (
		b   storage.Backend
		err error
	)

	switch opts.Driver {
	case storage.DriverMemory:
		b = storage.NewMemory()
	case storage.DriverFile:
		b, err = storage.NewFile(opts.Path)
	case storage.DriverSQLite, "":
		b, err = storage.NewSQLite(ctx, opts.Path)
	case storage.DriverPostgres:
		b, err = storage.OpenPostgres(opts.DSN)
	case storage.DriverRedis:
		b, err = storage.OpenRedis(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	return storage.WithQuota(b, opts.QuotaBytes), nil
}

func InitStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := Open(ctx, Options{
		Driver:     config.STORAGE_DRIVER,
		Path:       config.STORAGE_PATH,
		DSN:        config.DB_URL,
		RedisURL:   config.REDIS_URL,
		QuotaBytes: config.STORAGE_QUOTA_BYTES,
	})
	if err != nil {
		log.WithError(err).WithField("driver", config.STORAGE_DRIVER).Fatal("❌ Failed to open card storage")
	}

	Store = b
	log.WithField("driver", config.STORAGE_DRIVER).Info("✅ Card storage ready")
}

func Close() {
	if Store == nil {
		return
	}
	if err := Store.Close(); err != nil {
		log.WithError(err).Warn("Failed to close card storage")
	}
}
