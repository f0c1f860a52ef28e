package pages

import (
	"slices"
	"time"

	"health-portal-server/internal/charts"
	"health-portal-server/internal/control"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/models"
	"health-portal-server/internal/notify"
)

// SuggestionDuration is how long a warning suggestion stays on screen.
const SuggestionDuration = 5 * time.Second

// AnalysisView is the analysis page payload.
type AnalysisView struct {
	HealthScore      models.HealthScore   `json:"healthScore"`
	ScoreWeights     []models.ScoreWeight `json:"scoreWeights"`
	Warnings         []models.Warning     `json:"warnings"`
	AgeRanges        []models.AgeRange    `json:"ageRanges"`
	SelectedAgeRange models.AgeRange      `json:"selectedAgeRange"`
	Radar            charts.Chart         `json:"radar"`
}

// Analysis shows the fixed health index, its warnings and the age baseline
// selector. Changing the baseline never recomputes the scores.
type Analysis struct {
	score     models.HealthScore
	weights   []models.ScoreWeight
	warnings  []models.Warning
	ageRanges *control.Selector[string, models.AgeRange]
	notifier  notify.Notifier
}

// NewAnalysis creates the analysis page with the first age range selected.
func NewAnalysis(c *fixtures.Catalog, n notify.Notifier) *Analysis {
	return &Analysis{
		score:     c.HealthScore,
		weights:   slices.Clone(c.ScoreWeights),
		warnings:  slices.Clone(c.Warnings),
		ageRanges: control.NewSelector[string](c.AgeRanges),
		notifier:  n,
	}
}

// SelectAgeRange switches the displayed baseline. Unknown labels are ignored.
func (a *Analysis) SelectAgeRange(label string) bool {
	return a.ageRanges.Select(label)
}

// ShowSuggestion sends the suggestion of warning i to the user.
func (a *Analysis) ShowSuggestion(i int) error {
	if i < 0 || i >= len(a.warnings) {
		return ErrIndexOutOfRange
	}
	a.notifier.Notify(notify.LevelInfo, a.warnings[i].Suggestion, SuggestionDuration)
	return nil
}

// View returns the current page payload.
func (a *Analysis) View() AnalysisView {
	return AnalysisView{
		HealthScore:      a.score,
		ScoreWeights:     slices.Clone(a.weights),
		Warnings:         slices.Clone(a.warnings),
		AgeRanges:        a.ageRanges.Options(),
		SelectedAgeRange: a.ageRanges.Selected(),
		Radar:            charts.Radar(a.score),
	}
}
