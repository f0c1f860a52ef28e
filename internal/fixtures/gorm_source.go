package fixtures

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"health-portal-server/internal/models"
)

// GormSource reads the catalog from the fixture tables created by
// models.InitDB.
type GormSource struct {
	DB *gorm.DB
}

// NewGormSource creates a new GormSource.
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

// Load reads every fixture table in key order and validates the result.
func (s *GormSource) Load(ctx context.Context) (*Catalog, error) {
	db := s.DB.WithContext(ctx)
	c := &Catalog{ScoreWeights: Static().ScoreWeights}

	if err := db.Order("id").First(&c.HealthScore).Error; err != nil {
		return nil, fmt.Errorf("load health score: %w", err)
	}

	lists := []struct {
		name string
		dest interface{}
	}{
		{"features", &c.Features},
		{"warnings", &c.Warnings},
		{"age ranges", &c.AgeRanges},
		{"devices", &c.Devices},
		{"telemetry", &c.Telemetry},
		{"medicines", &c.Medicines},
		{"mood diary", &c.MoodDiary},
		{"abnormal metrics", &c.AbnormalMetrics},
		{"medical advice", &c.MedicalAdvice},
		{"preparation items", &c.PreparationItems},
		{"treatment plans", &c.TreatmentPlans},
	}
	for _, l := range lists {
		if err := db.Order("id").Find(l.dest).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", l.name, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Seed writes the given catalog into empty fixture tables. It does nothing
// when a health score row already exists.
func (s *GormSource) Seed(ctx context.Context, c *Catalog) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.HealthScore{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count health scores: %w", err)
		}
		if count > 0 {
			return nil
		}

		score := c.HealthScore
		rows := []interface{}{
			&score,
			&c.Features,
			&c.Warnings,
			&c.AgeRanges,
			&c.Devices,
			&c.Telemetry,
			&c.Medicines,
			&c.MoodDiary,
			&c.AbnormalMetrics,
			&c.MedicalAdvice,
			&c.PreparationItems,
			&c.TreatmentPlans,
		}
		for _, r := range rows {
			if v := reflect.ValueOf(r).Elem(); v.Kind() == reflect.Slice && v.Len() == 0 {
				continue
			}
			if err := tx.Create(r).Error; err != nil {
				return fmt.Errorf("seed %T: %w", r, err)
			}
		}
		return nil
	})
}
