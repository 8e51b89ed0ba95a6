package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/service"
)

func TestSimulateAsyncOperation_Success(t *testing.T) {
	start := time.Now()
	got, err := service.SimulateAsyncOperation(context.Background(), true, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Finished after 20 ms" {
		t.Errorf("unexpected result %q", got)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("resolved after %v, before the configured delay", elapsed)
	}
}

func TestSimulateAsyncOperation_Failure(t *testing.T) {
	start := time.Now()
	_, err := service.SimulateAsyncOperation(context.Background(), false, 20*time.Millisecond)
	if !errors.Is(err, domain.ErrSimulatedFailure) {
		t.Fatalf("expected ErrSimulatedFailure, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("rejected after %v, before the configured delay", elapsed)
	}
}

func TestSimulateAsyncOperation_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.SimulateAsyncOperation(ctx, true, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFutureAwait(t *testing.T) {
	ctx := context.Background()
	f := service.Go(ctx, func(ctx context.Context) (int, error) { return 42, nil })

	got, err := f.Await(ctx)
	if err != nil || got != 42 {
		t.Fatalf("Await = %d, %v; want 42, nil", got, err)
	}
}

func TestFutureHandleRunsFinallyAfterError(t *testing.T) {
	ctx := context.Background()
	f := service.Go(ctx, func(ctx context.Context) (string, error) {
		return service.SimulateAsyncOperation(ctx, false, time.Millisecond)
	})

	var mu sync.Mutex
	var calls []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, s)
	}

	<-f.Handle(
		func(string) { record("then") },
		func(error) { record("catch") },
		func() { record("finally") },
	)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || calls[0] != "catch" || calls[1] != "finally" {
		t.Fatalf("expected [catch finally], got %v", calls)
	}
}

func TestFutureHandleNilCallbacks(t *testing.T) {
	ctx := context.Background()
	f := service.Go(ctx, func(ctx context.Context) (int, error) { return 1, nil })

	select {
	case <-f.Handle(nil, nil, nil):
	case <-time.After(time.Second):
		t.Fatal("Handle with nil callbacks never completed")
	}
}

func TestWaitOneSecond_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if _, err := service.WaitOneSecond(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed >= time.Second {
		t.Fatalf("expected early return, waited %v", elapsed)
	}
}
