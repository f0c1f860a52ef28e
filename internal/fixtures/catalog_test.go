package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-portal-server/internal/models"
)

func TestStaticCatalogIsValid(t *testing.T) {
	c, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Len(t, c.AgeRanges, 4)
	assert.Len(t, c.Telemetry, 7)
	assert.Len(t, c.TreatmentPlans, 3)
	assert.Len(t, c.PreparationItems, 4)
	assert.Equal(t, models.HealthScore{Physical: 82, Behavior: 76, Mental: 68, Overall: 76}, c.HealthScore)
}

func TestStaticReturnsIndependentCopies(t *testing.T) {
	a := Static()
	b := Static()

	a.PreparationItems[0].Checked = true
	a.TreatmentPlans[1].Risks[0] = "changed"
	a.AgeRanges[0].PhysicalBase = 0

	assert.False(t, b.PreparationItems[0].Checked)
	assert.Equal(t, "轻微副作用", b.TreatmentPlans[1].Risks[0])
	assert.Equal(t, 85, b.AgeRanges[0].PhysicalBase)
	assert.Equal(t, "轻微副作用", Static().TreatmentPlans[1].Risks[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr error
	}{
		{
			name:    "missing score",
			mutate:  func(c *Catalog) { c.HealthScore = models.HealthScore{} },
			wantErr: ErrMissingHealthScore,
		},
		{
			name:    "no age ranges",
			mutate:  func(c *Catalog) { c.AgeRanges = nil },
			wantErr: ErrNoAgeRanges,
		},
		{
			name:    "no plans",
			mutate:  func(c *Catalog) { c.TreatmentPlans = nil },
			wantErr: ErrNoTreatmentPlans,
		},
		{
			name:    "duplicate age label",
			mutate:  func(c *Catalog) { c.AgeRanges[1].Label = c.AgeRanges[0].Label },
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "duplicate plan id",
			mutate:  func(c *Catalog) { c.TreatmentPlans[2].ID = 1 },
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "telemetry out of order",
			mutate:  func(c *Catalog) { c.Telemetry[0], c.Telemetry[1] = c.Telemetry[1], c.Telemetry[0] },
			wantErr: ErrUnorderedTelemetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Static()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), tt.wantErr)
		})
	}
}
