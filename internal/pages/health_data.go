package pages

import (
	"slices"

	"health-portal-server/internal/charts"
	"health-portal-server/internal/control"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/models"
	"health-portal-server/internal/notify"
)

// Pain level slider bounds and default.
const (
	PainLevelMin     = 0
	PainLevelMax     = 10
	PainLevelDefault = 3
)

// Messages emitted by the device and recording stubs.
const (
	MsgSearchingDevices = "正在搜索附近设备..."
	MsgCameraStarted    = "调用相机功能"
	MsgRecordingStarted = "开始录音"
	MsgRecordingStopped = "停止录音"
)

// HealthDataView is the health data page payload.
type HealthDataView struct {
	Devices   []models.Device          `json:"devices"`
	Telemetry []models.HealthDataPoint `json:"telemetry"`
	Trend     charts.Chart             `json:"trend"`
	PainLevel control.Slider           `json:"painLevel"`
	Medicines []models.Medicine        `json:"medicines"`
	MoodDiary []models.MoodEntry       `json:"moodDiary"`
	Recording bool                     `json:"recording"`
}

// HealthData lists paired devices, the seven day trend and the manual entry
// widgets. Device, camera and microphone actions are stubs that only notify.
type HealthData struct {
	devices   []models.Device
	telemetry []models.HealthDataPoint
	medicines []models.Medicine
	moodDiary []models.MoodEntry
	painLevel control.Slider
	recording bool
	notifier  notify.Notifier
}

// NewHealthData creates the health data page.
func NewHealthData(c *fixtures.Catalog, n notify.Notifier) *HealthData {
	return &HealthData{
		devices:   slices.Clone(c.Devices),
		telemetry: slices.Clone(c.Telemetry),
		medicines: slices.Clone(c.Medicines),
		moodDiary: slices.Clone(c.MoodDiary),
		painLevel: control.NewSlider(PainLevelMin, PainLevelMax, PainLevelDefault),
		notifier:  n,
	}
}

// ConnectDevice pretends to scan for devices.
func (h *HealthData) ConnectDevice() {
	h.notifier.Notify(notify.LevelSuccess, MsgSearchingDevices, 0)
}

// TakePhoto pretends to open the camera.
func (h *HealthData) TakePhoto() {
	h.notifier.Notify(notify.LevelInfo, MsgCameraStarted, 0)
}

// ToggleRecording flips the recording indicator and returns the new value.
func (h *HealthData) ToggleRecording() bool {
	if h.recording {
		h.notifier.Notify(notify.LevelInfo, MsgRecordingStopped, 0)
	} else {
		h.notifier.Notify(notify.LevelSuccess, MsgRecordingStarted, 0)
	}
	h.recording = !h.recording
	return h.recording
}

// SetPainLevel stores v clamped to [0,10] and returns the stored value.
func (h *HealthData) SetPainLevel(v int) int {
	return h.painLevel.Set(v)
}

// View returns the current page payload.
func (h *HealthData) View() HealthDataView {
	return HealthDataView{
		Devices:   slices.Clone(h.devices),
		Telemetry: slices.Clone(h.telemetry),
		Trend:     charts.Telemetry(h.telemetry),
		PainLevel: h.painLevel,
		Medicines: slices.Clone(h.medicines),
		MoodDiary: slices.Clone(h.moodDiary),
		Recording: h.recording,
	}
}
