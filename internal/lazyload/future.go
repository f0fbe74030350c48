// Package lazyload defers loading of the heavy task pane behind a future
// with three observable states: pending, ready, failed. Loads are not
// cancelable once started; the caller renders a placeholder while pending.
package lazyload

import (
	"context"
	"sync"
)

type State string

const (
	StatePending State = "pending"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

type Future[T any] struct {
	mu    sync.Mutex
	state State
	value T
	err   error
	done  chan struct{}
}

// Begin starts the load in a goroutine and returns immediately.
func Begin[T any](ctx context.Context, load func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		state: StatePending,
		done:  make(chan struct{}),
	}
	go func() {
		value, err := load(ctx)
		f.mu.Lock()
		if err != nil {
			f.state = StateFailed
			f.err = err
		} else {
			f.state = StateReady
			f.value = value
		}
		f.mu.Unlock()
		close(f.done)
	}()
	return f
}

func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Value returns the loaded value; the zero value while not ready.
func (f *Future[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Err returns the load error; nil unless the future failed.
func (f *Future[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Done is closed once the future leaves the pending state.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
