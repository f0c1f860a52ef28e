package session

import "time"

// AuthContext is the session's authentication state. It is only ever changed
// through Login and Logout, and no page is gated on it.
type AuthContext struct {
	authenticated bool
	changedAt     time.Time
}

// AuthState is the serialisable form of an AuthContext.
type AuthState struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	ChangedAt       *time.Time `json:"changedAt,omitempty"`
}

// Login marks the session authenticated.
func (a *AuthContext) Login(now time.Time) {
	a.authenticated = true
	a.changedAt = now
}

// Logout marks the session anonymous.
func (a *AuthContext) Logout(now time.Time) {
	a.authenticated = false
	a.changedAt = now
}

// IsAuthenticated reports the current state.
func (a *AuthContext) IsAuthenticated() bool {
	return a.authenticated
}

// State returns a snapshot.
func (a *AuthContext) State() AuthState {
	s := AuthState{IsAuthenticated: a.authenticated}
	if !a.changedAt.IsZero() {
		t := a.changedAt
		s.ChangedAt = &t
	}
	return s
}
