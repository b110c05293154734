package db

import (
	"context"
	"errors"
	"strings"

	"github.com/mithrel/lovelog/pkg/api"
)

// Store is the abstract log-entry repository: entries keyed by unique
// id with a secondary index by calendar-day key.
type Store interface {
	GetAll(ctx context.Context) ([]api.LogEntry, error)
	GetByDay(ctx context.Context, dayKey string) ([]api.LogEntry, error)
	// Add fails with ErrConflict when the id already exists.
	Add(ctx context.Context, e api.LogEntry) error
	// Update upserts.
	Update(ctx context.Context, e api.LogEntry) error
	Delete(ctx context.Context, id string) error
	// BulkAdd upserts each entry within one transaction where the
	// backend supports it.
	BulkAdd(ctx context.Context, entries []api.LogEntry) error
	Clear(ctx context.Context) error
}

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Open returns a Store for the given DSN: sqlite://path or mem://.
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return openSQLite(ctx, dsn)
	case dsn == "" || dsn == "mem://":
		return NewMem(), nil
	default:
		return nil, errors.New("unsupported store dsn: " + dsn)
	}
}
