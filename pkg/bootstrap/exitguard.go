package bootstrap

import (
	"context"
	"sync"
	"time"
)

// ExitGuard collects the guards registered by sync managers. A process asks it whether
// leaving now would interrupt a running operation.
type ExitGuard struct {
	mu     sync.Mutex
	guards map[int]func() bool
	nextID int
	poll   time.Duration
}

func NewExitGuard() *ExitGuard {
	return &ExitGuard{
		guards: map[int]func() bool{},
		poll:   100 * time.Millisecond,
	}
}

func (e *ExitGuard) OnExitAttempt(guard func() bool) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.guards[id] = guard

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.guards, id)
	}
}

func (e *ExitGuard) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, guard := range e.guards {
		if guard() {
			return true
		}
	}

	return false
}

// WaitIdle blocks until no guard reports a running operation or ctx is done.
func (e *ExitGuard) WaitIdle(ctx context.Context) error {
	ticker := time.NewTicker(e.poll)
	defer ticker.Stop()

	for e.Busy() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}
