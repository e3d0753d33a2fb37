package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
)

// Storages aggregates the repositories used by the service layer together
// with the connection they share.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
