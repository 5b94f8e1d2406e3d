package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"slotsync/core/constants"
	"slotsync/core/logger"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	expires_at TIMESTAMPTZ
)`

// PostgresProvider stores entries in a single key-value table. Postgres has
// no native TTL, so expiry is a filter on every read plus a periodic purge
// driven by the cleanup task.
type PostgresProvider struct {
	db *sqlx.DB
}

func NewPostgresProvider(ctx context.Context, dsn string) (*PostgresProvider, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(constants.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(constants.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute)

	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure kv table: %w", err)
	}

	logger.Info("postgres provider connected")
	return &PostgresProvider{db: db}, nil
}

func (p *PostgresProvider) Name() string { return "postgres" }

func (p *PostgresProvider) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.GetContext(ctx, &value,
		`SELECT value FROM kv_entries WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (p *PostgresProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, expiresAt)
	return err
}

func (p *PostgresProvider) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := p.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM kv_entries WHERE key = $1 AND (expires_at IS NULL OR expires_at > now()))`, key)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (p *PostgresProvider) Delete(ctx context.Context, key string) (bool, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (p *PostgresProvider) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := p.db.SelectContext(ctx, &keys,
		`SELECT key FROM kv_entries WHERE key LIKE $1 AND (expires_at IS NULL OR expires_at > now())`,
		prefix+"%")
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (p *PostgresProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// PurgeExpired removes rows past their expiry and reports how many went.
func (p *PostgresProvider) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (p *PostgresProvider) Close() error {
	return p.db.Close()
}
