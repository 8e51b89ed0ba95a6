package service

import (
	"context"
	"fmt"
	"log/slog"
)

// Runner executes demos one after another in program order.
type Runner struct {
	demos []Demo
}

// NewRunner creates a Runner for the given demos.
func NewRunner(demos []Demo) *Runner {
	return &Runner{demos: demos}
}

// Demos returns the names of the demos the runner executes.
func (r *Runner) Demos() []string {
	return Map(r.demos, func(d Demo) string { return d.Name })
}

// Run executes every demo against c. A demo's own failures are printed by the
// demo; a panicking demo is reported on the error stream and the run goes on.
// Run only returns an error when ctx ends before all demos ran.
func (r *Runner) Run(ctx context.Context, c *Console) error {
	for _, d := range r.demos {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run stopped before %s: %w", d.Name, err)
		}
		c.setDemo(d.Name)
		slog.Debug("demo starting", "demo", d.Name)
		runDemo(ctx, d, c)
	}
	c.setDemo("")
	return nil
}

func runDemo(ctx context.Context, d Demo, c *Console) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("demo panicked", "demo", d.Name, "panic", rec)
			c.Error(fmt.Sprintf("demo %s panicked: %v", d.Name, rec))
		}
	}()
	d.Run(ctx, c)
}
