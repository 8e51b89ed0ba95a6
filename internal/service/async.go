package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// SimulateAsyncOperation waits for delay and then succeeds with a message
// or fails with domain.ErrSimulatedFailure. A cancelled context ends the
// wait early with the context's error.
func SimulateAsyncOperation(ctx context.Context, success bool, delay time.Duration) (string, error) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if !success {
		return "", domain.ErrSimulatedFailure
	}
	return fmt.Sprintf("Finished after %d ms", delay.Milliseconds()), nil
}

// WaitOneSecond resolves after one second.
func WaitOneSecond(ctx context.Context) (string, error) {
	if _, err := SimulateAsyncOperation(ctx, true, time.Second); err != nil {
		return "", err
	}
	return "Done after 1 second", nil
}

// Future is the eventual result of a function started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on a new goroutine and returns a Future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Handle registers callbacks for the settled future. Exactly one of onValue
// and onError runs, followed by finally. Nil callbacks are skipped. The
// returned channel is closed after finally has run.
func (f *Future[T]) Handle(onValue func(T), onError func(error), finally func()) <-chan struct{} {
	handled := make(chan struct{})
	go func() {
		defer close(handled)
		<-f.done
		if finally != nil {
			defer finally()
		}
		if f.err != nil {
			if onError != nil {
				onError(f.err)
			}
			return
		}
		if onValue != nil {
			onValue(f.value)
		}
	}()
	return handled
}
