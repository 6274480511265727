package core

import (
	"context"
	"sync"
)

// GameState is the lifecycle of the application around a session
type GameState uint8

const (
	StateLoading GameState = iota
	StatePlaying
	StateFailed
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Startup runs a one-time blocking job (asset loading) off the game loop so
// the loop can keep polling until it resolves.
type Startup[T any] struct {
	done   chan struct{}
	once   sync.Once
	cancel context.CancelFunc
	val    T
	err    error
}

// StartStartup launches fn in the background
func StartStartup[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Startup[T] {
	ctx, cancel := context.WithCancel(ctx)
	s := &Startup[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(s.done)
		s.val, s.err = fn(ctx)
	}()
	return s
}

// Poll reports the result once fn has returned; ready is false until then
func (s *Startup[T]) Poll() (val T, ready bool, err error) {
	select {
	case <-s.done:
		s.once.Do(s.cancel)
		return s.val, true, s.err
	default:
		return val, false, nil
	}
}

// Wait blocks until fn returns or ctx is done
func (s *Startup[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-s.done:
		s.once.Do(s.cancel)
		return s.val, s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel abandons the job
func (s *Startup[T]) Cancel() {
	s.once.Do(s.cancel)
}
