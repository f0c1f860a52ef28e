// Package task models the simulated refresh: a one-shot deferred completion
// that stands in for a network round trip that never happens.
package task

import (
	"sync"
	"time"
)

// State represents where a refresh is in its lifecycle
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateDone    State = "done"
)

// RefreshTask moves idle|done -> pending -> done. While pending, further
// triggers are ignored. There is no cancellation and no failure path.
type RefreshTask struct {
	mu         sync.Mutex
	state      State
	delay      time.Duration
	onComplete func()
	afterFunc  func(time.Duration, func()) *time.Timer
}

// NewRefreshTask creates an idle task that completes delay after each
// trigger and then runs onComplete once.
func NewRefreshTask(delay time.Duration, onComplete func()) *RefreshTask {
	return &RefreshTask{
		state:      StateIdle,
		delay:      delay,
		onComplete: onComplete,
		afterFunc:  time.AfterFunc,
	}
}

// Trigger starts a refresh. It returns false, and does nothing, when one is
// already pending.
func (t *RefreshTask) Trigger() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StatePending {
		return false
	}
	t.state = StatePending
	t.afterFunc(t.delay, t.complete)
	return true
}

func (t *RefreshTask) complete() {
	t.mu.Lock()
	t.state = StateDone
	cb := t.onComplete
	t.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// State returns the current state.
func (t *RefreshTask) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Busy reports whether the refresh control should be disabled.
func (t *RefreshTask) Busy() bool {
	return t.State() == StatePending
}
