package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
)

// Migration is one SQL file applied inside a single transaction.
type Migration struct {
	Name string
	SQL  string
}

// Run applies the embedded migrations that have not been applied yet.
func Run(ctx context.Context, db *sql.DB) error {
	return Apply(ctx, db, FS)
}

// Apply applies the unapplied *.sql files found at the root of fsys in
// lexical order. Applied names are tracked in schema_migrations.
func Apply(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	pending, err := Pending(ctx, db, fsys)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		slog.Info("migration applied", "file", m.Name)
	}
	return nil
}

// Pending returns the migrations in fsys that are not yet recorded as applied.
func Pending(ctx context.Context, db *sql.DB, fsys fs.FS) ([]Migration, error) {
	all, err := Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("get applied migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var pending []Migration
	for _, m := range all {
		if applied[m.Name] {
			slog.Debug("migration already applied", "file", m.Name)
			continue
		}
		pending = append(pending, m)
	}
	return pending, nil
}

// Load reads every *.sql file at the root of fsys, sorted by name.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Name: path.Base(name), SQL: string(content)})
	}
	return migrations, nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("execute sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", m.Name); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}
