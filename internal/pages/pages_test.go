package pages

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-portal-server/internal/control"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/notify"
)

type sent struct {
	level    notify.Level
	message  string
	duration time.Duration
}

// recorder is a notify.Notifier that keeps everything it is given.
type recorder struct {
	mu   sync.Mutex
	sent []sent
}

func (r *recorder) Notify(level notify.Level, message string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sent{level, message, duration})
}

func (r *recorder) all() []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sent(nil), r.sent...)
}

func TestHomeFlagsUnregisteredLinks(t *testing.T) {
	c := fixtures.Static()
	view := NewHome(c).View()

	require.Len(t, view.Features, 4)
	routable := map[string]bool{}
	for _, f := range view.Features {
		routable[f.Path] = f.Routable
	}
	assert.True(t, routable[PathHealthData])
	assert.True(t, routable[PathAnalysis])
	assert.True(t, routable[PathRehabilitation])
	assert.False(t, routable["/monitoring"])

	bad := UnroutableLinks(c)
	require.Len(t, bad, 1)
	assert.Equal(t, "/monitoring", bad[0].Path)
}

func TestAnalysisAgeBaseline(t *testing.T) {
	c := fixtures.Static()
	a := NewAnalysis(c, &recorder{})

	assert.Equal(t, c.AgeRanges[0], a.View().SelectedAgeRange)

	for _, r := range c.AgeRanges {
		require.True(t, a.SelectAgeRange(r.Label))
		got := a.View().SelectedAgeRange
		assert.Equal(t, r.PhysicalBase, got.PhysicalBase)
		assert.Equal(t, r.BehaviorBase, got.BehaviorBase)
		assert.Equal(t, r.MentalBase, got.MentalBase)
		assert.Equal(t, c.HealthScore, a.View().HealthScore, "baseline must not change scores")
	}

	require.True(t, a.SelectAgeRange("31-45岁"))
	assert.False(t, a.SelectAgeRange("99岁"))
	assert.Equal(t, "31-45岁", a.View().SelectedAgeRange.Label)
}

func TestAnalysisShowSuggestion(t *testing.T) {
	rec := &recorder{}
	a := NewAnalysis(fixtures.Static(), rec)

	require.NoError(t, a.ShowSuggestion(1))
	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, notify.LevelInfo, got[0].level)
	assert.Equal(t, "请及时就医检查，建议家人陪同", got[0].message)
	assert.Equal(t, 5*time.Second, got[0].duration)

	assert.ErrorIs(t, a.ShowSuggestion(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.ShowSuggestion(-1), ErrIndexOutOfRange)
	assert.Len(t, rec.all(), 1)
}

func TestHealthDataStubs(t *testing.T) {
	rec := &recorder{}
	h := NewHealthData(fixtures.Static(), rec)

	h.ConnectDevice()
	h.TakePhoto()
	assert.True(t, h.ToggleRecording())
	assert.True(t, h.View().Recording)
	assert.False(t, h.ToggleRecording())

	got := rec.all()
	require.Len(t, got, 4)
	assert.Equal(t, sent{notify.LevelSuccess, MsgSearchingDevices, 0}, got[0])
	assert.Equal(t, sent{notify.LevelInfo, MsgCameraStarted, 0}, got[1])
	assert.Equal(t, sent{notify.LevelSuccess, MsgRecordingStarted, 0}, got[2])
	assert.Equal(t, sent{notify.LevelInfo, MsgRecordingStopped, 0}, got[3])

	view := h.View()
	assert.Len(t, view.Devices, 3)
	assert.Len(t, view.Trend.Rows, 7)
}

func TestHealthDataPainLevelClamps(t *testing.T) {
	h := NewHealthData(fixtures.Static(), &recorder{})
	assert.Equal(t, PainLevelDefault, h.View().PainLevel.Value)
	assert.Equal(t, 10, h.SetPainLevel(11))
	assert.Equal(t, 0, h.SetPainLevel(-3))
	assert.Equal(t, 6, h.SetPainLevel(6))
}

func TestFamilyCareChecklist(t *testing.T) {
	f := NewFamilyCare(fixtures.Static(), &recorder{}, time.Millisecond)

	require.NoError(t, f.ToggleItem(2))
	items := f.View().Checklist
	assert.True(t, items[2].Checked)
	assert.False(t, items[0].Checked)
	assert.False(t, items[1].Checked)
	assert.False(t, items[3].Checked)

	require.NoError(t, f.ToggleItem(2))
	assert.False(t, f.View().Checklist[2].Checked)

	assert.ErrorIs(t, f.ToggleItem(9), control.ErrItemNotFound)
}

func TestFamilyCareChecklistDoesNotLeakBetweenPages(t *testing.T) {
	c := fixtures.Static()
	a := NewFamilyCare(c, &recorder{}, time.Millisecond)
	b := NewFamilyCare(c, &recorder{}, time.Millisecond)

	require.NoError(t, a.ToggleItem(0))
	assert.False(t, b.View().Checklist[0].Checked)
	assert.False(t, c.PreparationItems[0].Checked)
}

func TestFamilyCareRefresh(t *testing.T) {
	rec := &recorder{}
	f := NewFamilyCare(fixtures.Static(), rec, 30*time.Millisecond)

	require.True(t, f.Refresh())
	assert.True(t, f.View().Refreshing)
	assert.False(t, f.Refresh())

	assert.Eventually(t, func() bool { return !f.View().Refreshing }, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return len(rec.all()) == 1 }, time.Second, 5*time.Millisecond)

	got := rec.all()
	assert.Equal(t, notify.LevelSuccess, got[0].level)
	assert.Equal(t, MsgRefreshed, got[0].message)
}

func TestRehabilitationSelectPlan(t *testing.T) {
	r := NewRehabilitation(fixtures.Static(), &recorder{})
	assert.Equal(t, 1, r.View().SelectedPlan.ID)

	require.True(t, r.SelectPlan(2))
	p := r.View().SelectedPlan
	assert.Equal(t, 85, p.Effect)
	assert.Equal(t, 60, p.Cost)
	assert.Equal(t, 70, p.Compliance)
	assert.Equal(t, []string{"轻微副作用", "需定期复查"}, p.Risks)
	assert.Equal(t, "#82ca9d", r.View().Comparison.Series[0].Color)

	assert.False(t, r.SelectPlan(7))
	assert.Equal(t, 2, r.View().SelectedPlan.ID)
}

func TestRehabilitationAdjustmentClamps(t *testing.T) {
	r := NewRehabilitation(fixtures.Static(), &recorder{})
	assert.Equal(t, DoseDefault, r.Adjustment().Dose)
	assert.Equal(t, FrequencyDefault, r.Adjustment().Frequency)

	adj := r.SetAdjustment(140, 0)
	assert.Equal(t, 100, adj.Dose)
	assert.Equal(t, 1, adj.Frequency)

	adj = r.SetAdjustment(-20, 12)
	assert.Equal(t, 0, adj.Dose)
	assert.Equal(t, 4, adj.Frequency)
}

func TestRehabilitationBlankNoteIsIgnored(t *testing.T) {
	rec := &recorder{}
	r := NewRehabilitation(fixtures.Static(), rec)
	r.OpenNote()

	assert.False(t, r.SubmitNote("  "))
	assert.Empty(t, rec.all())
	view := r.View()
	assert.True(t, view.NoteModalOpen)
	assert.Equal(t, "  ", view.Adjustment.Note)
}

func TestRehabilitationSubmitNote(t *testing.T) {
	rec := &recorder{}
	r := NewRehabilitation(fixtures.Static(), rec)
	r.OpenNote()

	assert.True(t, r.SubmitNote("减少剂量"))
	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, sent{notify.LevelSuccess, MsgNoteAdded, 0}, got[0])

	view := r.View()
	assert.False(t, view.NoteModalOpen)
	assert.Empty(t, view.Adjustment.Note)
}

func TestRehabilitationCancelKeepsDraft(t *testing.T) {
	r := NewRehabilitation(fixtures.Static(), &recorder{})
	r.OpenNote()
	r.SubmitNote("\t")
	r.CancelNote()

	view := r.View()
	assert.False(t, view.NoteModalOpen)
	assert.Equal(t, "\t", view.Adjustment.Note)
}
