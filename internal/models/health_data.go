package models

// Device is a paired measuring device.
type Device struct {
	FixtureModel
	Name      string `gorm:"size:100" json:"deviceName"`
	Connected bool   `json:"status"`
	LastSync  string `gorm:"size:32" json:"lastSync"`
}

// HealthDataPoint is one day of telemetry. Fixture points are ordered by date.
type HealthDataPoint struct {
	FixtureModel
	Date        string `gorm:"size:16" json:"date"`
	HeartRate   int    `json:"heartRate"`
	BloodOxygen int    `json:"bloodOxygen"`
	Steps       int    `json:"steps"`
}

// Medicine is a medication reminder, optionally with a photo.
type Medicine struct {
	FixtureModel
	Name  string `gorm:"size:100" json:"medicine"`
	Time  string `gorm:"size:8" json:"time"`
	Image string `gorm:"size:255" json:"image,omitempty"`
}

// MoodEntry is a mood diary line, optionally with a voice note transcript.
type MoodEntry struct {
	FixtureModel
	Date      string `gorm:"size:16" json:"date"`
	Mood      string `gorm:"size:32" json:"mood"`
	VoiceNote string `gorm:"size:255" json:"voiceNote,omitempty"`
}
