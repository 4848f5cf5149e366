package trips

import (
	"context"
	"errors"

	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
	"gorm.io/gorm"
)

// listOrder keeps every trip listing newest-first: start date first,
// creation time as the tiebreak for same-day trips.
const listOrder = "start_date DESC, created_at DESC"

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(trips.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) Create(ctx context.Context, trip *trips.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *GormRepository) Update(ctx context.Context, trip *trips.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*trips.Trip, error) {
	var trip trips.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trips.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *GormRepository) List(ctx context.Context) ([]trips.Trip, error) {
	items := make([]trips.Trip, 0)
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) ListRecent(ctx context.Context, limit int) ([]trips.Trip, error) {
	query := r.db.WithContext(ctx).Order(listOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}

	items := make([]trips.Trip, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) ListFavorites(ctx context.Context) ([]trips.Trip, error) {
	items := make([]trips.Trip, 0)
	if err := r.db.WithContext(ctx).Where("favorite = ?", true).Order(listOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&trips.Trip{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormRepository) DeletePhotosByTrip(ctx context.Context, tripID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&photos.Photo{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
