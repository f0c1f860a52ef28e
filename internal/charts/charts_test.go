package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-portal-server/internal/fixtures"
)

func TestRadarPassesScoresThrough(t *testing.T) {
	c := Radar(fixtures.Static().HealthScore)

	require.Len(t, c.Rows, 3)
	assert.Equal(t, 82, c.Rows[0]["A"])
	assert.Equal(t, 76, c.Rows[1]["A"])
	assert.Equal(t, 68, c.Rows[2]["A"])
	for _, r := range c.Rows {
		assert.Equal(t, 100, r["fullMark"])
	}
	assert.Equal(t, Domain{0, 100}, *c.Domain)
}

func TestTelemetryKeepsOrderAndValues(t *testing.T) {
	points := fixtures.Static().Telemetry
	c := Telemetry(points)

	require.Len(t, c.Rows, len(points))
	for i, p := range points {
		assert.Equal(t, p.Date, c.Rows[i]["date"])
		assert.Equal(t, p.HeartRate, c.Rows[i]["heartRate"])
		assert.Equal(t, p.BloodOxygen, c.Rows[i]["bloodOxygen"])
		assert.Equal(t, p.Steps, c.Rows[i]["steps"])
	}
	assert.Len(t, c.Series, 3)
	assert.Nil(t, c.Domain)
}

func TestPlanComparisonBarColourFollowsSelection(t *testing.T) {
	plans := fixtures.Static().TreatmentPlans

	tests := []struct {
		selected int
		wantBar  string
	}{
		{1, "#8884d8"},
		{2, "#82ca9d"},
		{3, "#ffc658"},
	}
	for _, tt := range tests {
		c := PlanComparison(plans, tt.selected)
		require.Len(t, c.Series, 3)
		assert.Equal(t, KindBar, c.Series[0].Kind)
		assert.Equal(t, tt.wantBar, c.Series[0].Color)
	}

	c := PlanComparison(plans, 99)
	assert.Len(t, c.Series, 2)

	require.Len(t, c.Rows, 3)
	assert.Equal(t, "标准治疗", c.Rows[1]["name"])
	assert.Equal(t, 85, c.Rows[1][KeyEffect])
	assert.Equal(t, 60, c.Rows[1][KeyCost])
	assert.Equal(t, 70, c.Rows[1][KeyCompliance])
}
