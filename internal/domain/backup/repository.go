package backup

import (
	"context"

	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
)

// Repository spans both collections: export reads them together and
// import replaces them together. Transaction hands the callback a
// Repository bound to the same transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListTrips(ctx context.Context) ([]trips.Trip, error)
	ListPhotos(ctx context.Context) ([]photos.Photo, error)
	DeleteAllTrips(ctx context.Context) error
	DeleteAllPhotos(ctx context.Context) error
	CreateTrip(ctx context.Context, trip *trips.Trip) error
	CreatePhoto(ctx context.Context, photo *photos.Photo) error
}
