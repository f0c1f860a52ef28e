package pages

import (
	"slices"
	"time"

	"health-portal-server/internal/control"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/models"
	"health-portal-server/internal/notify"
	"health-portal-server/internal/task"
)

// MsgRefreshed is sent once per completed refresh.
const MsgRefreshed = "数据已更新"

// FamilyCareView is the family care page payload.
type FamilyCareView struct {
	AbnormalMetrics []models.AbnormalMetric  `json:"abnormalMetrics"`
	MedicalAdvice   []models.MedicalAdvice   `json:"medicalAdvice"`
	Checklist       []models.PreparationItem `json:"checklist"`
	Refreshing      bool                     `json:"refreshing"`
}

// FamilyCare shows abnormal readings, advice and the visit checklist.
type FamilyCare struct {
	metrics   []models.AbnormalMetric
	advice    []models.MedicalAdvice
	checklist *control.Checklist
	refresh   *task.RefreshTask
}

// NewFamilyCare creates the family care page. A refresh completes
// refreshDelay after it is triggered.
func NewFamilyCare(c *fixtures.Catalog, n notify.Notifier, refreshDelay time.Duration) *FamilyCare {
	return &FamilyCare{
		metrics:   slices.Clone(c.AbnormalMetrics),
		advice:    slices.Clone(c.MedicalAdvice),
		checklist: control.NewChecklist(c.PreparationItems),
		refresh: task.NewRefreshTask(refreshDelay, func() {
			n.Notify(notify.LevelSuccess, MsgRefreshed, 0)
		}),
	}
}

// ToggleItem flips checklist item i.
func (f *FamilyCare) ToggleItem(i int) error {
	return f.checklist.Toggle(i)
}

// Refresh starts the simulated refresh. It returns false while one is
// already running.
func (f *FamilyCare) Refresh() bool {
	return f.refresh.Trigger()
}

// View returns the current page payload.
func (f *FamilyCare) View() FamilyCareView {
	return FamilyCareView{
		AbnormalMetrics: slices.Clone(f.metrics),
		MedicalAdvice:   slices.Clone(f.advice),
		Checklist:       f.checklist.Items(),
		Refreshing:      f.refresh.Busy(),
	}
}
