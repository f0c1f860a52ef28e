// Package fixtures is the read-only data module every page is built from.
// Pages receive a *Catalog and never reach for package-level data, so a real
// data source can replace the compiled-in one without touching page logic.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"health-portal-server/internal/models"
)

var (
	ErrMissingHealthScore = errors.New("fixture catalog has no health score")
	ErrNoAgeRanges        = errors.New("fixture catalog has no age ranges")
	ErrNoTreatmentPlans   = errors.New("fixture catalog has no treatment plans")
	ErrDuplicateKey       = errors.New("fixture catalog has a duplicate key")
	ErrUnorderedTelemetry = errors.New("fixture telemetry is not ordered by date")
)

// Source loads a fixture catalog.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Catalog is the full set of page data. Treat it as read-only: pages copy
// anything they mutate.
type Catalog struct {
	Features         []models.Feature
	HealthScore      models.HealthScore
	ScoreWeights     []models.ScoreWeight
	Warnings         []models.Warning
	AgeRanges        []models.AgeRange
	Devices          []models.Device
	Telemetry        []models.HealthDataPoint
	Medicines        []models.Medicine
	MoodDiary        []models.MoodEntry
	AbnormalMetrics  []models.AbnormalMetric
	MedicalAdvice    []models.MedicalAdvice
	PreparationItems []models.PreparationItem
	TreatmentPlans   []models.TreatmentPlan
}

// Validate checks the structural invariants pages rely on.
func (c *Catalog) Validate() error {
	if c.HealthScore == (models.HealthScore{}) {
		return ErrMissingHealthScore
	}
	if len(c.AgeRanges) == 0 {
		return ErrNoAgeRanges
	}
	if len(c.TreatmentPlans) == 0 {
		return ErrNoTreatmentPlans
	}

	labels := make(map[string]struct{}, len(c.AgeRanges))
	for _, r := range c.AgeRanges {
		if _, dup := labels[r.Label]; dup {
			return fmt.Errorf("age range %q: %w", r.Label, ErrDuplicateKey)
		}
		labels[r.Label] = struct{}{}
	}

	ids := make(map[int]struct{}, len(c.TreatmentPlans))
	for _, p := range c.TreatmentPlans {
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("treatment plan %d: %w", p.ID, ErrDuplicateKey)
		}
		ids[p.ID] = struct{}{}
	}

	for i := 1; i < len(c.Telemetry); i++ {
		if c.Telemetry[i-1].Date >= c.Telemetry[i].Date {
			return fmt.Errorf("%s before %s: %w", c.Telemetry[i-1].Date, c.Telemetry[i].Date, ErrUnorderedTelemetry)
		}
	}
	return nil
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	plans := make([]models.TreatmentPlan, len(c.TreatmentPlans))
	for i, p := range c.TreatmentPlans {
		p.Risks = slices.Clone(p.Risks)
		plans[i] = p
	}
	return &Catalog{
		Features:         slices.Clone(c.Features),
		HealthScore:      c.HealthScore,
		ScoreWeights:     slices.Clone(c.ScoreWeights),
		Warnings:         slices.Clone(c.Warnings),
		AgeRanges:        slices.Clone(c.AgeRanges),
		Devices:          slices.Clone(c.Devices),
		Telemetry:        slices.Clone(c.Telemetry),
		Medicines:        slices.Clone(c.Medicines),
		MoodDiary:        slices.Clone(c.MoodDiary),
		AbnormalMetrics:  slices.Clone(c.AbnormalMetrics),
		MedicalAdvice:    slices.Clone(c.MedicalAdvice),
		PreparationItems: slices.Clone(c.PreparationItems),
		TreatmentPlans:   plans,
	}
}
