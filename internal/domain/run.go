package domain

import (
	"context"
	"time"
)

// Stream names the console channel a line was written to.
type Stream string

const (
	StreamOut Stream = "out"
	StreamErr Stream = "err"
)

// RunLine is one console line produced by a demo.
type RunLine struct {
	Seq       int
	Demo      string
	Stream    Stream
	Text      string
	CreatedAt time.Time
}

// Run is one execution of the demo runner.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Lines      []RunLine
}

// RunRepository defines persistence operations for recorded runs.
type RunRepository interface {
	Create(ctx context.Context, run *Run) error
	AppendLine(ctx context.Context, runID string, line RunLine) error
	Finish(ctx context.Context, runID string, at time.Time) error
	GetByID(ctx context.Context, id string) (*Run, error)
	ListRecent(ctx context.Context, limit int) ([]Run, error)
	DeleteAll(ctx context.Context) (int64, error)
}
