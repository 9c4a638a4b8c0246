package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Storage wraps the PostgreSQL connection pool. All access goes through
// Begin so that every unit of work is a single transaction.
type Storage struct {
	ctx    context.Context
	logger *zap.SugaredLogger
	pool   *pgxpool.Pool
}

func NewStorage(ctx context.Context, log *zap.Logger) *Storage {
	return &Storage{ctx: ctx, logger: log.Sugar()}
}

// Connect establishes the connection pool. An explicit database name, when
// configured, overrides whatever the connection string carries.
func (s *Storage) Connect(dsn, database string) error {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if database != "" {
		conf.ConnConfig.Database = database
	}

	s.pool, err = pgxpool.ConnectConfig(s.ctx, conf)
	return err
}

// Init prepares the schema: a meta table recording when this database was
// first provisioned, and the pin table whose composite uniqueness constraint
// the auto-pin deduplication relies on.
func (s *Storage) Init() error {
	return s.Begin(s.ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(s.ctx, `create table if not exists meta (
			id serial primary key,
			name text not null unique,
			time timestamptz not null
		)`); err != nil {
			return fmt.Errorf("failed to create meta table: %w", err)
		}

		if _, err := tx.Exec(s.ctx, `create table if not exists pin (
			id serial primary key,
			guild_id bigint not null,
			message_id bigint not null,
			unique (guild_id, message_id)
		)`); err != nil {
			return fmt.Errorf("failed to create pin table: %w", err)
		}

		if _, err := tx.Exec(s.ctx,
			`insert into meta (name, time) values ('created', now()) on conflict do nothing`,
		); err != nil {
			return fmt.Errorf("failed to record creation time: %w", err)
		}

		return nil
	})
}

func (s *Storage) Begin(ctx context.Context, fn func(pgx.Tx) error) error {
	return s.pool.BeginFunc(ctx, fn)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
