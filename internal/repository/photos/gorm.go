package photos

import (
	"context"

	"triplog/internal/domain/photos"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, photo *photos.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *GormRepository) List(ctx context.Context) ([]photos.Photo, error) {
	items := make([]photos.Photo, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) ListByTrip(ctx context.Context, tripID int64) ([]photos.Photo, error) {
	items := make([]photos.Photo, 0)
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&photos.Photo{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
