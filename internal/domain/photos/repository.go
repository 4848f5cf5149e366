package photos

import "context"

type Repository interface {
	Create(ctx context.Context, photo *Photo) error
	List(ctx context.Context) ([]Photo, error)
	ListByTrip(ctx context.Context, tripID int64) ([]Photo, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
