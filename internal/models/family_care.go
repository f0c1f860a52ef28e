package models

// Urgency of a piece of medical advice
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
)

// AbnormalMetric is a reading outside its normal range. Value is kept as the
// display string because readings such as blood pressure are not scalar.
type AbnormalMetric struct {
	FixtureModel
	Metric      string `gorm:"size:32" json:"metric"`
	Value       string `gorm:"size:32" json:"value"`
	NormalRange string `gorm:"size:32" json:"normalRange"`
	Timestamp   string `gorm:"size:32" json:"timestamp"`
}

// MedicalAdvice is a recommendation shown to family members.
type MedicalAdvice struct {
	FixtureModel
	Title   string  `gorm:"size:100" json:"title"`
	Content string  `gorm:"type:text" json:"content"`
	Urgency Urgency `gorm:"size:10" json:"urgency"`
}

// PreparationItem is one line of the visit preparation checklist.
type PreparationItem struct {
	FixtureModel
	Label   string `gorm:"size:100" json:"item"`
	Checked bool   `json:"checked"`
}
