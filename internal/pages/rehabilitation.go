package pages

import (
	"strings"

	"health-portal-server/internal/charts"
	"health-portal-server/internal/control"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/models"
	"health-portal-server/internal/notify"
)

// Adjustment defaults.
const (
	DoseDefault      = 50
	FrequencyDefault = 2
)

// MsgNoteAdded confirms a submitted note.
const MsgNoteAdded = "批注已添加"

// AdjustmentView exposes the doctor sliders and the draft note.
type AdjustmentView struct {
	Dose      control.Slider `json:"dose"`
	Frequency control.Slider `json:"frequency"`
	Note      string         `json:"note"`
}

// RehabilitationView is the rehabilitation page payload.
type RehabilitationView struct {
	Plans         []models.TreatmentPlan `json:"plans"`
	SelectedPlan  models.TreatmentPlan   `json:"selectedPlan"`
	Comparison    charts.Chart           `json:"comparison"`
	Adjustment    AdjustmentView         `json:"adjustment"`
	NoteModalOpen bool                   `json:"noteModalOpen"`
}

// Rehabilitation compares the candidate plans and holds the doctor's
// session-local adjustments. Nothing here is saved.
type Rehabilitation struct {
	plans     *control.Selector[int, models.TreatmentPlan]
	dose      control.Slider
	frequency control.Slider
	note      string
	noteOpen  bool
	notifier  notify.Notifier
}

// NewRehabilitation creates the page with the first plan selected.
func NewRehabilitation(c *fixtures.Catalog, n notify.Notifier) *Rehabilitation {
	return &Rehabilitation{
		plans:     control.NewSelector[int](c.TreatmentPlans),
		dose:      control.NewSlider(models.DoseMin, models.DoseMax, DoseDefault),
		frequency: control.NewSlider(models.FrequencyMin, models.FrequencyMax, FrequencyDefault),
		notifier:  n,
	}
}

// SelectPlan makes plan id active. Unknown ids are ignored.
func (r *Rehabilitation) SelectPlan(id int) bool {
	return r.plans.Select(id)
}

// SetAdjustment stores dose and frequency clamped to their ranges.
func (r *Rehabilitation) SetAdjustment(dose, frequency int) models.DoctorAdjustment {
	r.dose.Set(dose)
	r.frequency.Set(frequency)
	return r.Adjustment()
}

// Adjustment returns the current doctor adjustment.
func (r *Rehabilitation) Adjustment() models.DoctorAdjustment {
	return models.DoctorAdjustment{Dose: r.dose.Value, Frequency: r.frequency.Value, Note: r.note}
}

// OpenNote shows the note modal.
func (r *Rehabilitation) OpenNote() {
	r.noteOpen = true
}

// CancelNote hides the note modal and keeps the draft.
func (r *Rehabilitation) CancelNote() {
	r.noteOpen = false
}

// SubmitNote confirms a note. A blank note is kept as the draft and nothing
// else happens. Otherwise the user is notified, the note is discarded and the
// modal closes.
func (r *Rehabilitation) SubmitNote(text string) bool {
	r.note = text
	if strings.TrimSpace(text) == "" {
		return false
	}
	r.notifier.Notify(notify.LevelSuccess, MsgNoteAdded, 0)
	r.note = ""
	r.noteOpen = false
	return true
}

// View returns the current page payload.
func (r *Rehabilitation) View() RehabilitationView {
	selected := r.plans.Selected()
	return RehabilitationView{
		Plans:        r.plans.Options(),
		SelectedPlan: selected,
		Comparison:   charts.PlanComparison(r.plans.Options(), selected.ID),
		Adjustment: AdjustmentView{
			Dose:      r.dose,
			Frequency: r.frequency,
			Note:      r.note,
		},
		NoteModalOpen: r.noteOpen,
	}
}
