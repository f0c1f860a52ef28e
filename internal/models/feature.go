package models

// Feature is a navigation card on the home page.
type Feature struct {
	FixtureModel
	Title       string `gorm:"size:64" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:64" json:"icon"`
	Path        string `gorm:"size:64" json:"path"`
}
