// Package session groups one instance of every page's view state, the auth
// context and the notification feed. That is everything one browser tab
// holds, kept in memory only.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/notify"
	"health-portal-server/internal/pages"
)

var ErrSessionNotFound = errors.New("session not found")

// State is the mutable state of one session. Access it only inside
// Session.Use.
type State struct {
	Auth           AuthContext
	Home           *pages.Home
	Analysis       *pages.Analysis
	HealthData     *pages.HealthData
	FamilyCare     *pages.FamilyCare
	Rehabilitation *pages.Rehabilitation
}

// Session is one client's state.
type Session struct {
	ID            string
	CreatedAt     time.Time
	Notifications *notify.Feed

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

// Use runs fn with exclusive access to the session state.
func (s *Session) Use(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Options configures a Store.
type Options struct {
	TTL          time.Duration
	RefreshDelay time.Duration
	Logger       *slog.Logger
}

// Store keeps sessions in memory. Every session is built from the same
// catalog; pages copy whatever they mutate.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *fixtures.Catalog
	opts     Options
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore(catalog *fixtures.Catalog, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a new session with every page in its initial state.
func (st *Store) Create() *Session {
	now := st.now()
	id := uuid.New().String()
	feed := notify.NewFeed(notify.DefaultCapacity, st.opts.Logger.With("session", id))

	s := &Session{
		ID:            id,
		CreatedAt:     now,
		Notifications: feed,
		lastSeen:      now,
		state: State{
			Home:           pages.NewHome(st.catalog),
			Analysis:       pages.NewAnalysis(st.catalog, feed),
			HealthData:     pages.NewHealthData(st.catalog, feed),
			FamilyCare:     pages.NewFamilyCare(st.catalog, feed, st.opts.RefreshDelay),
			Rehabilitation: pages.NewRehabilitation(st.catalog, feed),
		},
	}

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()

	st.opts.Logger.Info("session created", "session", id)
	return s
}

// Get returns the session with the given id and marks it active.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.now())
	return s, nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many were
// removed. A zero TTL keeps sessions forever.
func (st *Store) Sweep() int {
	if st.opts.TTL <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.opts.TTL)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		st.opts.Logger.Info("expired sessions swept", "count", removed)
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (st *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
