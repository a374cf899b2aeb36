package store

import (
	"context"
	"fmt"

	"github.com/nautiquiz/backend/internal/domain/history"
)

// Drivers accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a Store implementation.
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	RedisAddr   string
}

// Open creates the store selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		s   Store
		err error
	)
	switch opts.Driver {
	case "", DriverSQLite:
		s, err = NewSQLite(opts.SQLitePath)
	case DriverPostgres:
		s, err = NewPostgres(ctx, opts.PostgresDSN)
	case DriverRedis:
		s, err = NewRedis(ctx, opts.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Unavailable stands in for a store that could not be opened. Every call
// fails with ErrUnavailable so callers fall back to an empty history.
type Unavailable struct{}

var _ Store = Unavailable{}

func (Unavailable) FetchHistory(context.Context, string) (history.History, error) {
	return nil, ErrUnavailable
}

func (Unavailable) UpsertAnswer(context.Context, string, string, history.Entry) error {
	return ErrUnavailable
}

func (Unavailable) ListUsers(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) SaveReport(context.Context, string, string, string) error {
	return ErrUnavailable
}

func (Unavailable) Close() error { return nil }
