package sqlite

import (
	"context"
	"fmt"

	"swifttrack-dashboard/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type DB struct {
	*sqlx.DB
}

// Open opens (creating if needed) the local session database at path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	// One writer is all a single session needs and avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to sqlite database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	logger.Info("Session database opened", zap.String("path", path))

	return &DB{DB: conn}, nil
}

func (d *DB) Health(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}
