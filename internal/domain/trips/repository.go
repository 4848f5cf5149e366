package trips

import "context"

// Repository is the persistence boundary for trips. Transaction hands
// the callback a Repository bound to the same transaction, so the
// cascade in Service.Delete commits or rolls back as a unit.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, trip *Trip) error
	Update(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, id int64) (*Trip, error)
	List(ctx context.Context) ([]Trip, error)
	ListRecent(ctx context.Context, limit int) ([]Trip, error)
	ListFavorites(ctx context.Context) ([]Trip, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeletePhotosByTrip(ctx context.Context, tripID int64) (int64, error)
}
