package photos

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, input PhotoInput) (*Photo, error) {
	if input.TripID <= 0 {
		return nil, fmt.Errorf("%w: tripId is required", ErrValidation)
	}
	if input.Data == "" {
		return nil, fmt.Errorf("%w: data is required", ErrValidation)
	}

	photo := &Photo{
		TripID: input.TripID,
		Data:   input.Data,
		Name:   input.Name,
		Type:   input.Type,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *Service) List(ctx context.Context) ([]Photo, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByTrip(ctx context.Context, tripID int64) ([]Photo, error) {
	return s.repo.ListByTrip(ctx, tripID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPhotoNotFound
	}
	return nil
}

// DeleteByTrip removes each photo attached to a trip one by one. Unlike
// the cascade inside trip deletion this is not transactional: a failure
// partway leaves earlier deletions in place, and the error reports how
// far the pass got.
func (s *Service) DeleteByTrip(ctx context.Context, tripID int64) (int, error) {
	items, err := s.repo.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}

	for i, photo := range items {
		if _, err := s.repo.Delete(ctx, photo.ID); err != nil {
			return i, fmt.Errorf("removed %d of %d photos for trip %d: %w", i, len(items), tripID, err)
		}
	}
	return len(items), nil
}
