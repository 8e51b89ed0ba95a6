package service_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/repository/sqlite"
	"github.com/msomdec/practice-demos/internal/service"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRunService(t *testing.T, demos ...service.Demo) *service.RunService {
	t.Helper()
	return service.NewRunService(newTestDB(t).Runs(), service.NewRunner(demos))
}

func TestRunService_ExecuteRecordsTranscript(t *testing.T) {
	svc := newTestRunService(t,
		service.Demo{Name: "one", Run: func(_ context.Context, c *service.Console) { c.Log("hello") }},
		service.Demo{Name: "two", Run: func(_ context.Context, c *service.Console) { c.Error("CATCH:", "nope") }},
	)
	ctx := context.Background()

	var observed []domain.RunLine
	var out, errOut bytes.Buffer
	run, err := svc.Execute(ctx, &out, &errOut, func(l domain.RunLine) { observed = append(observed, l) })
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "hello\n" || errOut.String() != "CATCH: nope\n" {
		t.Fatalf("unexpected console output %q / %q", out.String(), errOut.String())
	}
	if len(observed) != 2 {
		t.Fatalf("expected observer to see 2 lines, got %d", len(observed))
	}

	stored, err := svc.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.FinishedAt == nil {
		t.Fatal("expected stored run to be finished")
	}
	if len(stored.Lines) != 2 || stored.Lines[0].Demo != "one" || stored.Lines[1].Stream != domain.StreamErr {
		t.Fatalf("unexpected stored lines %+v", stored.Lines)
	}
}

func TestRunService_GetRejectsNonUUID(t *testing.T) {
	svc := newTestRunService(t)

	_, err := svc.Get(context.Background(), "42")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRunService_ListAndDelete(t *testing.T) {
	svc := newTestRunService(t,
		service.Demo{Name: "one", Run: func(_ context.Context, c *service.Console) { c.Log("x") }},
	)
	ctx := context.Background()

	for range 2 {
		if _, err := svc.Execute(ctx, &bytes.Buffer{}, &bytes.Buffer{}, nil); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	}

	runs, err := svc.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	n, err := svc.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
}

func TestPostService_SeedSamplesIdempotent(t *testing.T) {
	svc := service.NewPostService(newTestDB(t).Posts())
	ctx := context.Background()

	for range 2 {
		if err := svc.SeedSamples(ctx); err != nil {
			t.Fatalf("SeedSamples: %v", err)
		}
	}

	n, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != service.SamplePostCount() {
		t.Fatalf("expected %d posts, got %d", service.SamplePostCount(), n)
	}

	post, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if post.Title == "" || post.UserID != 1 {
		t.Fatalf("unexpected post %+v", post)
	}

	if _, err := svc.GetByID(ctx, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for id 0, got %v", err)
	}
}
