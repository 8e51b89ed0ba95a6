package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/practice-demos/internal/config"
	"github.com/msomdec/practice-demos/internal/handler"
	"github.com/msomdec/practice-demos/internal/repository/sqlite"
	"github.com/msomdec/practice-demos/internal/service"
)

const usage = `usage: practice <command> [flags]

commands:
  run              run every demo and print to the console (default)
  serve            serve the local JSON test API and the run dashboard
  hash-admin-key   print the bcrypt hash to use as ADMIN_KEY_HASH
`

func main() {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cmd, args := "run", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "run":
		err = runDemos(ctx, cfg, args)
	case "serve":
		err = serve(ctx, cfg)
	case "hash-admin-key":
		err = hashAdminKey(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

// runDemos prints every demo to the console. With -record the transcript is
// also stored in the database.
func runDemos(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	record := fs.Bool("record", false, "store the transcript in DATABASE_PATH")
	fs.Parse(args)

	client := service.NewPostClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	demos, err := service.NewDemos(cfg.Plan, client)
	if err != nil {
		return err
	}
	runner := service.NewRunner(demos)

	if !*record {
		return runner.Run(ctx, service.NewConsole(os.Stdout, os.Stderr))
	}

	db, err := openDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := service.NewRunService(db.Runs(), runner).Execute(ctx, os.Stdout, os.Stderr, nil)
	if run != nil {
		slog.Info("run recorded", "run_id", run.ID)
	}
	return err
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	admin, err := service.NewAdminGuard(cfg.AdminKeyHash)
	if err != nil {
		return err
	}
	if !admin.Enabled() {
		slog.Warn("ADMIN_KEY_HASH not set; DELETE /runs is disabled")
	}

	db, err := openDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	postService := service.NewPostService(db.Posts())
	// Seed the sample posts (idempotent).
	if err := postService.SeedSamples(ctx); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	slog.Info("sample posts seeded", "count", service.SamplePostCount())

	client := service.NewPostClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	demos, err := service.NewDemos(cfg.Plan, client)
	if err != nil {
		return err
	}
	runService := service.NewRunService(db.Runs(), service.NewRunner(demos))
	shareService := service.NewShareService(cfg.ShareSecret, cfg.ShareTTL)

	limiter := service.NewTokenBucket(5, 20)
	go limiter.SweepEvery(ctx, 5*time.Minute)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, db, postService, runService, shareService, admin, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.LogRequests(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "api_base_url", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func hashAdminKey(args []string) error {
	fs := flag.NewFlagSet("hash-admin-key", flag.ExitOnError)
	cost := fs.Int("cost", 12, "bcrypt cost (4-14)")
	fs.Parse(args)

	if *cost < 4 || *cost > 14 {
		return fmt.Errorf("cost must be between 4 and 14, got %d", *cost)
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one admin key argument")
	}

	hash, err := service.HashAdminKey(fs.Arg(0), *cost)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func openDatabase(ctx context.Context, path string) (*sqlite.DB, error) {
	db, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "path", path)
	return db, nil
}
