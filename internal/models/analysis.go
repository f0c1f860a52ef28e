package models

// WarningLevel represents the severity colour of a health warning
type WarningLevel string

const (
	WarningYellow WarningLevel = "yellow"
	WarningRed    WarningLevel = "red"
)

// HealthScore is the precomputed composite health index. Values are 0-100 and
// are never recomputed.
type HealthScore struct {
	FixtureModel
	Physical int `json:"physical"`
	Behavior int `json:"behavior"`
	Mental   int `json:"mental"`
	Overall  int `json:"overall"`
}

// ScoreWeight is the display weight shown next to each index dimension.
type ScoreWeight struct {
	Dimension string `json:"dimension"`
	Percent   int    `json:"percent"`
}

// Warning is a health alert with a suggestion revealed on click.
type Warning struct {
	FixtureModel
	Level      WarningLevel `gorm:"size:10" json:"level"`
	Message    string       `gorm:"size:255" json:"message"`
	Suggestion string       `gorm:"size:255" json:"suggestion"`
}

// AgeRange is the baseline triple for one age bracket.
type AgeRange struct {
	FixtureModel
	Label        string `gorm:"size:32;uniqueIndex" json:"ageRange"`
	PhysicalBase int    `json:"physicalBase"`
	BehaviorBase int    `json:"behaviorBase"`
	MentalBase   int    `json:"mentalBase"`
}

// Key identifies the age range within a selector.
func (a AgeRange) Key() string { return a.Label }
