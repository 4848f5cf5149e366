package stats

import (
	"context"

	"triplog/internal/domain/stats"
	"triplog/internal/domain/trips"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Overview(ctx context.Context) (stats.Overview, error) {
	var overview stats.Overview
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM trips)                                    AS trips,
			(SELECT COUNT(DISTINCT country) FROM trips WHERE country <> '') AS countries,
			(SELECT COUNT(DISTINCT city) FROM trips WHERE city <> '')       AS cities,
			(SELECT COUNT(*) FROM trips WHERE place <> '')                  AS places,
			(SELECT COUNT(*) FROM photos)                                   AS photos
	`).Scan(&overview).Error
	return overview, err
}

func (r *GormRepository) CountriesByTripCount(ctx context.Context) ([]stats.NameCount, error) {
	ranked := make([]stats.NameCount, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT country AS name, COUNT(*) AS count
		FROM trips
		WHERE country <> ''
		GROUP BY country
		ORDER BY count DESC, name ASC
	`).Scan(&ranked).Error
	if err != nil {
		return nil, err
	}
	return ranked, nil
}

func (r *GormRepository) TagSlices(ctx context.Context) ([][]string, error) {
	var rows []datatypes.JSONSlice[string]
	if err := r.db.WithContext(ctx).Model(&trips.Trip{}).Pluck("tags", &rows).Error; err != nil {
		return nil, err
	}

	slices := make([][]string, 0, len(rows))
	for _, row := range rows {
		slices = append(slices, []string(row))
	}
	return slices, nil
}
