// Package charts reshapes fixture records into the row/series layout the
// client chart library consumes. Values pass through untouched.
package charts

import "health-portal-server/internal/models"

// FullMark is the fixed upper bound for every score axis.
const FullMark = 100

// Domain is a fixed axis range.
type Domain [2]int

// PercentDomain is the [0,100] axis used by score and plan charts.
var PercentDomain = Domain{0, FullMark}

// Series describes one plotted key.
type Series struct {
	Key   string `json:"dataKey"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
	YAxis string `json:"yAxisId,omitempty"`
	Fill  bool   `json:"fill,omitempty"`
}

// Series kinds.
const (
	KindLine  = "line"
	KindBar   = "bar"
	KindRadar = "radar"
)

// Row is one x-axis position: the category plus a value per series key.
type Row map[string]interface{}

// Chart is a complete chart payload.
type Chart struct {
	XKey   string   `json:"xKey"`
	Domain *Domain  `json:"domain,omitempty"`
	Series []Series `json:"series"`
	Rows   []Row    `json:"data"`
}

// Radar turns the health score into the three-axis radar chart.
func Radar(score models.HealthScore) Chart {
	d := PercentDomain
	return Chart{
		XKey:   "subject",
		Domain: &d,
		Series: []Series{{Key: "A", Name: "健康指数", Kind: KindRadar, Color: "#2CB9B5", Fill: true}},
		Rows: []Row{
			{"subject": "生理", "A": score.Physical, "fullMark": FullMark},
			{"subject": "行为", "A": score.Behavior, "fullMark": FullMark},
			{"subject": "心理", "A": score.Mental, "fullMark": FullMark},
		},
	}
}

// Telemetry turns the daily data points into a three-line chart. The y axis
// is left to the client.
func Telemetry(points []models.HealthDataPoint) Chart {
	rows := make([]Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, Row{
			"date":        p.Date,
			"heartRate":   p.HeartRate,
			"bloodOxygen": p.BloodOxygen,
			"steps":       p.Steps,
		})
	}
	return Chart{
		XKey: "date",
		Series: []Series{
			{Key: "heartRate", Name: "心率(bpm)", Kind: KindLine, Color: "#8884d8"},
			{Key: "bloodOxygen", Name: "血氧(%)", Kind: KindLine, Color: "#82ca9d"},
			{Key: "steps", Name: "步数", Kind: KindLine, Color: "#ffc658"},
		},
		Rows: rows,
	}
}

// Plan comparison row keys, also used as series labels.
const (
	KeyEffect     = "疗效"
	KeyCost       = "成本"
	KeyCompliance = "依从性"
)

// planBarColors maps the selected plan id to the effect bar colour.
var planBarColors = map[int]string{
	1: "#8884d8",
	2: "#82ca9d",
	3: "#ffc658",
}

// PlanComparison builds the composed chart: effect as a bar (coloured by the
// selected plan), cost and compliance as lines. No bar is drawn when the
// selected id has no colour.
func PlanComparison(plans []models.TreatmentPlan, selectedID int) Chart {
	rows := make([]Row, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, Row{
			"name":        p.Name,
			KeyEffect:     p.Effect,
			KeyCost:       p.Cost,
			KeyCompliance: p.Compliance,
		})
	}

	var series []Series
	if color, ok := planBarColors[selectedID]; ok {
		series = append(series, Series{Key: KeyEffect, Name: KeyEffect, Kind: KindBar, Color: color, YAxis: "left"})
	}
	series = append(series,
		Series{Key: KeyCost, Name: KeyCost, Kind: KindLine, Color: "#ff8042", YAxis: "right"},
		Series{Key: KeyCompliance, Name: KeyCompliance, Kind: KindLine, Color: "#00C49F", YAxis: "right"},
	)

	d := PercentDomain
	return Chart{XKey: "name", Domain: &d, Series: series, Rows: rows}
}
