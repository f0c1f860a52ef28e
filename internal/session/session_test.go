package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/logs"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(fixtures.Static(), Options{
		TTL:          ttl,
		RefreshDelay: 10 * time.Millisecond,
		Logger:       logs.Discard(),
	})
}

func TestAuthTransitions(t *testing.T) {
	var a AuthContext
	assert.False(t, a.IsAuthenticated())
	assert.Nil(t, a.State().ChangedAt)

	now := time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC)
	a.Login(now)
	assert.True(t, a.IsAuthenticated())
	require.NotNil(t, a.State().ChangedAt)
	assert.Equal(t, now, *a.State().ChangedAt)

	a.Logout(now.Add(time.Minute))
	assert.False(t, a.IsAuthenticated())
}

func TestStoreCreateAndGet(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	st := newTestStore(time.Hour)
	a := st.Create()
	b := st.Create()

	a.Use(func(s *State) {
		require.NoError(t, s.FamilyCare.ToggleItem(0))
		s.Rehabilitation.SelectPlan(3)
		s.Auth.Login(time.Now())
	})

	b.Use(func(s *State) {
		assert.False(t, s.FamilyCare.View().Checklist[0].Checked)
		assert.Equal(t, 1, s.Rehabilitation.View().SelectedPlan.ID)
		assert.False(t, s.Auth.IsAuthenticated())
	})
}

func TestSessionNotificationsReachFeed(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()

	s.Use(func(st *State) { st.HealthData.ConnectDevice() })
	got := s.Notifications.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "正在搜索附近设备...", got[0].Message)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	st := newTestStore(time.Minute)
	clock := time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return clock }

	old := st.Create()
	clock = clock.Add(30 * time.Second)
	fresh := st.Create()

	clock = clock.Add(45 * time.Second)
	assert.Equal(t, 1, st.Sweep())

	_, err := st.Get(old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSweepWithoutTTLKeepsEverything(t *testing.T) {
	st := newTestStore(0)
	st.Create()
	assert.Zero(t, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestRunJanitorStopsOnCancel(t *testing.T) {
	st := newTestStore(time.Nanosecond)
	st.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		st.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestConcurrentUse(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Use(func(st *State) { _ = st.FamilyCare.ToggleItem(1) })
		}()
	}
	wg.Wait()

	s.Use(func(st *State) {
		assert.False(t, st.FamilyCare.View().Checklist[1].Checked, "50 toggles leave the item unchecked")
	})
}
