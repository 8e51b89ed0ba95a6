package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/msomdec/practice-demos/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	// Verify the posts table exists by inserting a row.
	_, err := db.ExecContext(ctx,
		"INSERT INTO posts (id, user_id, title, body) VALUES (?, ?, ?, ?)",
		1, 1, "title", "body",
	)
	if err != nil {
		t.Fatalf("insert into posts: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migrations recorded, got %d", count)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	pending, err := migrations.Pending(ctx, db, migrations.FS)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending migrations, got %d", len(pending))
	}
}

func TestApplyOrdersByName(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"002_add_row.sql": {Data: []byte("INSERT INTO things (name) VALUES ('second');")},
		"001_create.sql":  {Data: []byte("CREATE TABLE things (name TEXT NOT NULL);")},
		"README.md":       {Data: []byte("not a migration")},
	}

	if err := migrations.Apply(ctx, db, fsys); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var name string
	if err := db.QueryRowContext(ctx, "SELECT name FROM things").Scan(&name); err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "second" {
		t.Fatalf("expected row 'second', got %q", name)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE ok (id INTEGER); THIS IS NOT SQL;")},
	}

	if err := migrations.Apply(ctx, db, fsys); err == nil {
		t.Fatal("expected error from broken migration")
	}

	pending, err := migrations.Pending(ctx, db, fsys)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected failed migration to remain pending, got %d pending", len(pending))
	}
}
