package postgres

import (
	"fmt"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL and migrates the tracking schema. The handle
// is returned to the caller; nothing here is package-global.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.FoodRecord{},
		&domain.TrackingEntry{},
		&domain.FavoriteFood{},
		&domain.DailyInsight{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}
