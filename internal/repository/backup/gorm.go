package backup

import (
	"context"

	"triplog/internal/domain/backup"
	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(backup.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) ListTrips(ctx context.Context) ([]trips.Trip, error) {
	items := make([]trips.Trip, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) ListPhotos(ctx context.Context) ([]photos.Photo, error) {
	items := make([]photos.Photo, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) DeleteAllTrips(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM trips`).Error
}

func (r *GormRepository) DeleteAllPhotos(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM photos`).Error
}

func (r *GormRepository) CreateTrip(ctx context.Context, trip *trips.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *GormRepository) CreatePhoto(ctx context.Context, photo *photos.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}
