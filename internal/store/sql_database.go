// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/migrations"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel statement builder using the right placeholder format and an
// [ErrorClassificator] that understands the driver's error values.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// connectBackOff returns the backoff policy used while waiting for the
// database at startup.
var connectBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}

// NewConnectDB opens the database described by cfg.DSN. DSNs starting with
// postgres:// or postgresql:// are opened through pgx, anything else is
// treated as a SQLite file path.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ping checks the connection, retrying transient failures with exponential
// backoff up to attempts times. Errors the classifier does not consider
// retryable stop the loop immediately.
func (db *DB) ping(ctx context.Context, attempts uint) error {
	if attempts == 0 {
		attempts = 1
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := db.PingContext(ctx); err != nil {
			if db.errorClassificator.Classify(err) == Retryable {
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(connectBackOff()),
		backoff.WithMaxTries(attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			db.logger.Warn().Err(err).
				Str("func", "*DB.ping").
				Str("dialect", db.dialect).
				Dur("retry_in", next).
				Msg("database is not ready yet")
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	return nil
}
