package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/practice-demos/internal/domain"
)

// RunService executes the demo runner and records each run.
type RunService struct {
	runs   domain.RunRepository
	runner *Runner
}

// NewRunService creates a new RunService.
func NewRunService(runs domain.RunRepository, runner *Runner) *RunService {
	return &RunService{runs: runs, runner: runner}
}

// Execute runs all demos, printing to out and errOut, and stores the
// transcript. onLine, when non-nil, observes each line as it is printed.
func (s *RunService) Execute(ctx context.Context, out, errOut io.Writer, onLine func(domain.RunLine)) (*domain.Run, error) {
	run := &domain.Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	slog.Info("run started", "run_id", run.ID, "demos", len(s.runner.demos))

	console := NewConsole(out, errOut)
	console.SetSink(func(line domain.RunLine) {
		run.Lines = append(run.Lines, line)
		if err := s.runs.AppendLine(ctx, run.ID, line); err != nil {
			slog.Error("record run line", "run_id", run.ID, "seq", line.Seq, "error", err)
		}
		if onLine != nil {
			onLine(line)
		}
	})

	runErr := s.runner.Run(ctx, console)

	finished := time.Now().UTC()
	// The run's context may already be cancelled; record the finish anyway.
	if err := s.runs.Finish(context.WithoutCancel(ctx), run.ID, finished); err != nil {
		return run, fmt.Errorf("finish run: %w", err)
	}
	run.FinishedAt = &finished
	slog.Info("run finished", "run_id", run.ID, "lines", len(run.Lines), "elapsed", finished.Sub(run.StartedAt))

	return run, runErr
}

// Get returns a recorded run with its lines.
func (s *RunService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: run id must be a UUID", domain.ErrInvalidInput)
	}
	return s.runs.GetByID(ctx, id)
}

// ListRecent returns up to limit runs, newest first, without their lines.
func (s *RunService) ListRecent(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.runs.ListRecent(ctx, limit)
}

// DeleteAll removes every recorded run and returns how many were removed.
func (s *RunService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.runs.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete runs: %w", err)
	}
	slog.Info("runs deleted", "count", n)
	return n, nil
}

// Demos returns the names of the demos each run executes.
func (s *RunService) Demos() []string {
	return s.runner.Demos()
}
