package db

import (
	"fmt"

	"triplog/internal/auth"
	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
	"gorm.io/gorm"
)

// Prepare brings the schema up to date. AutoMigrate owns tables and
// columns; the listing and aggregation indexes are created explicitly so
// both sqlite and postgres end up with the same set.
func Prepare(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&trips.Trip{},
		&photos.Photo{},
		&auth.User{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_trips_country ON trips (country)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_city ON trips (city)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_start_date ON trips (start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_favorite ON trips (favorite)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_photos_trip_id ON photos (trip_id)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
