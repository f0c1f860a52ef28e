package models

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// FixtureModel carries the surrogate key used when fixture rows live in a
// database. Display order follows the key.
type FixtureModel struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"-"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// FixtureTables lists every table a database-backed fixture source owns.
func FixtureTables() []interface{} {
	return []interface{}{
		&Feature{},
		&HealthScore{},
		&Warning{},
		&AgeRange{},
		&Device{},
		&HealthDataPoint{},
		&Medicine{},
		&MoodEntry{},
		&AbnormalMetric{},
		&MedicalAdvice{},
		&PreparationItem{},
		&TreatmentPlan{},
	}
}

// InitDB opens the MySQL connection and migrates the fixture tables.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(FixtureTables()...); err != nil {
		return nil, err
	}

	return db, nil
}
