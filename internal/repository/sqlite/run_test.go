package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/practice-demos/internal/domain"
)

func TestRunRepository_Lifecycle(t *testing.T) {
	repo := newTestDB(t).Runs()
	ctx := context.Background()

	run := &domain.Run{ID: uuid.NewString(), StartedAt: time.Now().UTC()}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create: %v", err)
	}

	lines := []domain.RunLine{
		{Seq: 1, Demo: "basics", Stream: domain.StreamOut, Text: "add(2, 3) = 5", CreatedAt: time.Now().UTC()},
		{Seq: 2, Demo: "promise", Stream: domain.StreamErr, Text: "CATCH: simulated async failure", CreatedAt: time.Now().UTC()},
	}
	for _, l := range lines {
		if err := repo.AppendLine(ctx, run.ID, l); err != nil {
			t.Fatalf("AppendLine %d: %v", l.Seq, err)
		}
	}

	if err := repo.Finish(ctx, run.ID, time.Now().UTC()); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	found, err := repo.GetByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.FinishedAt == nil {
		t.Fatal("expected FinishedAt to be set")
	}
	if len(found.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(found.Lines))
	}
	if found.Lines[1].Stream != domain.StreamErr || found.Lines[1].Demo != "promise" {
		t.Fatalf("unexpected second line: %+v", found.Lines[1])
	}
}

func TestRunRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestDB(t).Runs()

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunRepository_FinishUnknownRun(t *testing.T) {
	repo := newTestDB(t).Runs()

	err := repo.Finish(context.Background(), uuid.NewString(), time.Now())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunRepository_AppendLineRequiresRun(t *testing.T) {
	repo := newTestDB(t).Runs()

	err := repo.AppendLine(context.Background(), uuid.NewString(), domain.RunLine{
		Seq: 1, Stream: domain.StreamOut, Text: "orphan", CreatedAt: time.Now(),
	})
	if err == nil {
		t.Fatal("expected foreign key error for unknown run")
	}
}

func TestRunRepository_ListRecentAndDeleteAll(t *testing.T) {
	db := newTestDB(t)
	repo := db.Runs()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := range 3 {
		run := &domain.Run{ID: uuid.NewString(), StartedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, run); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.AppendLine(ctx, run.ID, domain.RunLine{Seq: 1, Stream: domain.StreamOut, Text: "x", CreatedAt: base}); err != nil {
			t.Fatalf("AppendLine: %v", err)
		}
		ids = append(ids, run.ID)
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	if recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Fatalf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted, got %d", n)
	}

	var lineCount int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM run_lines").Scan(&lineCount); err != nil {
		t.Fatalf("count run_lines: %v", err)
	}
	if lineCount != 0 {
		t.Fatalf("expected run lines to cascade, %d left", lineCount)
	}

	recent, err = repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent after delete: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected no runs after DeleteAll, got %d", len(recent))
	}
}
