package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
)

const sqliteMemory = ":memory:"

// NewConnectSQLite opens (creating if needed) the SQLite database file named
// by cfg.DSN. Foreign keys are switched on unless the DSN already carries
// connection parameters.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, _, hasParams := strings.Cut(cfg.DSN, "?")

	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	dsn := cfg.DSN
	if !hasParams {
		dsn += "?_foreign_keys=on&_busy_timeout=5000"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	// every connection to :memory: would see its own empty database
	if path == sqliteMemory {
		conn.SetMaxOpenConns(1)
	}

	db := newDB(conn, DialectSQLite, log)

	// ping database
	if err = db.ping(ctx, cfg.ConnectAttempts); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == sqliteMemory || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
