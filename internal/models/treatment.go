package models

// Dose and frequency bounds for doctor adjustments.
const (
	DoseMin      = 0
	DoseMax      = 100
	FrequencyMin = 1
	FrequencyMax = 4
)

// TreatmentPlan is one candidate care pathway.
type TreatmentPlan struct {
	ID          int      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string   `gorm:"size:100" json:"name"`
	Effect      int      `json:"effect"`
	Cost        int      `json:"cost"`
	Compliance  int      `json:"compliance"`
	Risks       []string `gorm:"serializer:json" json:"risks"`
	Description string   `gorm:"type:text" json:"description"`
}

// Key identifies the plan within a selector.
func (p TreatmentPlan) Key() int { return p.ID }

// DoctorAdjustment is the session-local dose/frequency tuning plus the draft
// note. It is never persisted.
type DoctorAdjustment struct {
	Dose      int    `json:"dose"`
	Frequency int    `json:"frequency"`
	Note      string `json:"note"`
}
