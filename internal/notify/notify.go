// Package notify is the user-visible notification channel. Emitters fire and
// forget; the client drains the feed.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level represents the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// DefaultCapacity is the number of undrained notifications a feed keeps.
const DefaultCapacity = 50

// Notification is a toast message shown to the user.
type Notification struct {
	ID         string    `json:"id"`
	Level      Level     `json:"level"`
	Message    string    `json:"message"`
	DurationMs int       `json:"durationMs,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Notifier accepts notifications. Implementations must not block.
type Notifier interface {
	Notify(level Level, message string, duration time.Duration)
}

// Feed buffers notifications for one session until the client drains them.
// When full, the oldest entry is dropped.
type Feed struct {
	mu       sync.Mutex
	pending  []Notification
	capacity int
	logger   *slog.Logger
	now      func() time.Time
}

// NewFeed creates a feed that keeps at most capacity notifications.
func NewFeed(capacity int, logger *slog.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{capacity: capacity, logger: logger, now: time.Now}
}

// Notify appends a notification. A zero duration leaves display time to the
// client.
func (f *Feed) Notify(level Level, message string, duration time.Duration) {
	n := Notification{
		ID:         uuid.New().String(),
		Level:      level,
		Message:    message,
		DurationMs: int(duration / time.Millisecond),
		CreatedAt:  f.now(),
	}

	f.mu.Lock()
	if len(f.pending) == f.capacity {
		f.pending = f.pending[1:]
	}
	f.pending = append(f.pending, n)
	f.mu.Unlock()

	if f.logger != nil {
		f.logger.Info("notification", "id", n.ID, "level", n.Level, "message", n.Message)
	}
}

// Drain returns the pending notifications oldest first and empties the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	if out == nil {
		return []Notification{}
	}
	return out
}

// Len reports the number of pending notifications.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
