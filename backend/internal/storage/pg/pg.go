package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
	"github.com/itchan-dev/forum/shared/utils"
)

//go:embed migrations/init.sql
var schema string

// IdGenerator produces the unique part of an id; the kind prefix is added by the store.
type IdGenerator func() string

// Clock is the source of creation timestamps.
type Clock func() time.Time

type Storage struct {
	db    *sql.DB
	newId IdGenerator
	now   Clock
}

type Option func(*Storage)

func WithIdGenerator(gen IdGenerator) Option {
	return func(s *Storage) { s.newId = gen }
}

func WithClock(clock Clock) Option {
	return func(s *Storage) { s.now = clock }
}

// New connects to the database described by cfg. The caller owns the handle
// and must release it with Cleanup.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, sharedpg.DSN(cfg), sharedpg.ConnectionConfigFrom(cfg))
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewWithDB(db, opts...), nil
}

// NewWithDB wraps an already opened pool.
func NewWithDB(db *sql.DB, opts ...Option) *Storage {
	s := &Storage{
		db:    db,
		newId: func() string { return utils.NewId("") },
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate applies the embedded schema. It is idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) id(prefix string) string {
	return prefix + s.newId()
}

// exists runs a SELECT EXISTS(...) query.
func exists(ctx context.Context, q sharedpg.Querier, query string, args ...interface{}) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
