package database

import (
	"context"
	"fmt"

	"swifttrack-dashboard/internal/config"
	"swifttrack-dashboard/internal/infrastructure/database/postgres"
	"swifttrack-dashboard/internal/infrastructure/database/sqlite"
	"swifttrack-dashboard/internal/session"
)

// SessionBackend is a session.Storage that owns a connection.
type SessionBackend interface {
	session.Storage
	Health(ctx context.Context) error
	Close() error
}

type closingStorage struct {
	session.Storage
	health func(context.Context) error
	close  func() error
}

func (c *closingStorage) Health(ctx context.Context) error { return c.health(ctx) }
func (c *closingStorage) Close() error                     { return c.close() }

// OpenSessionBackend opens the storage selected by SESSION_BACKEND.
func OpenSessionBackend(cfg *config.Config) (SessionBackend, error) {
	switch cfg.Session.Backend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.Session.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &closingStorage{
			Storage: sqlite.NewSessionRepository(db),
			health:  db.Health,
			close:   db.Close,
		}, nil
	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		return &closingStorage{
			Storage: postgres.NewSessionRepository(db),
			health:  db.Health,
			close:   db.Close,
		}, nil
	case config.BackendMemory:
		return session.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
