package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/msomdec/practice-demos/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps an
	// in-memory database alive for the life of the pool.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", strings.ToLower(pragma), err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies any pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.SqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Posts returns the post repository.
func (d *DB) Posts() *PostRepository {
	return NewPostRepository(d)
}

// Runs returns the run repository.
func (d *DB) Runs() *RunRepository {
	return NewRunRepository(d)
}
