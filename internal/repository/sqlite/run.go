package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// RunRepository implements domain.RunRepository using SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite-backed RunRepository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db.SqlDB}
}

func (r *RunRepository) Create(ctx context.Context, run *domain.Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		run.ID, run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *RunRepository) AppendLine(ctx context.Context, runID string, line domain.RunLine) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO run_lines (run_id, seq, demo, stream, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, line.Seq, line.Demo, string(line.Stream), line.Text, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run line: %w", err)
	}
	return nil
}

func (r *RunRepository) Finish(ctx context.Context, runID string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ? WHERE id = ?`, at, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	run := &domain.Run{}
	var finished sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.StartedAt, &finished)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query run by id: %w", err)
	}
	if finished.Valid {
		run.FinishedAt = &finished.Time
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, demo, stream, text, created_at FROM run_lines
		 WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("query run lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.RunLine
		var stream string
		if err := rows.Scan(&line.Seq, &line.Demo, &stream, &line.Text, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run line: %w", err)
		}
		line.Stream = domain.Stream(stream)
		run.Lines = append(run.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRecent returns runs newest first. Lines are not loaded.
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]domain.Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at FROM runs
		 ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		var run domain.Run
		var finished sql.NullTime
		if err := rows.Scan(&run.ID, &run.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteAll removes every run; their lines go with them through the
// foreign key cascade.
func (r *RunRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("delete runs: %w", err)
	}
	return result.RowsAffected()
}
