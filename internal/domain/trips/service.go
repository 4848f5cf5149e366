package trips

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Add(ctx context.Context, input TripInput) (*Trip, error) {
	trip, err := tripFromInput(input)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Update replaces the stored record with the input wholesale. The id
// comes from the argument and createdAt from the stored record, whatever
// the caller sent.
func (s *Service) Update(ctx context.Context, id int64, input TripInput) (*Trip, error) {
	trip, err := tripFromInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trip.ID = existing.ID
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip and every photo attached to it in one
// transaction. Photos go first so a torn sequence can only ever leave
// orphaned photos behind, never a trip with missing ones.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeletePhotosByTrip(ctx, id); err != nil {
			return fmt.Errorf("delete photos for trip %d: %w", id, err)
		}

		deleted, err := tx.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTripNotFound
		}
		return nil
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*Trip, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Trip, error) {
	return s.repo.List(ctx)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Trip, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) Favorites(ctx context.Context) ([]Trip, error) {
	return s.repo.ListFavorites(ctx)
}

// Search matches the query case-insensitively against title, country,
// city, place, notes and tags. It scans the full listing; a blank query
// returns everything in list order.
func (s *Service) Search(ctx context.Context, query string) ([]Trip, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return all, nil
	}

	matched := make([]Trip, 0, len(all))
	for _, trip := range all {
		if tripMatches(trip, needle) {
			matched = append(matched, trip)
		}
	}
	return matched, nil
}

func tripMatches(trip Trip, needle string) bool {
	for _, field := range []string{trip.Title, trip.Country, trip.City, trip.Place, trip.Notes} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range trip.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func tripFromInput(input TripInput) (*Trip, error) {
	title := strings.TrimSpace(input.Title)
	country := strings.TrimSpace(input.Country)
	city := strings.TrimSpace(input.City)
	startDate := strings.TrimSpace(input.StartDate)
	endDate := strings.TrimSpace(input.EndDate)

	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	case country == "":
		return nil, fmt.Errorf("%w: country is required", ErrValidation)
	case city == "":
		return nil, fmt.Errorf("%w: city is required", ErrValidation)
	case startDate == "":
		return nil, fmt.Errorf("%w: startDate is required", ErrValidation)
	}

	if _, err := time.Parse(DateLayout, startDate); err != nil {
		return nil, fmt.Errorf("%w: startDate must be formatted as %s", ErrValidation, DateLayout)
	}
	if endDate != "" {
		if _, err := time.Parse(DateLayout, endDate); err != nil {
			return nil, fmt.Errorf("%w: endDate must be formatted as %s", ErrValidation, DateLayout)
		}
		if endDate < startDate {
			return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
		}
	}

	return &Trip{
		Title:      title,
		Country:    country,
		City:       city,
		Place:      strings.TrimSpace(input.Place),
		StartDate:  startDate,
		EndDate:    endDate,
		Notes:      input.Notes,
		Tags:       normalizeTags(input.Tags),
		Favorite:   input.Favorite,
		Lat:        input.Lat,
		Lng:        input.Lng,
		CoverPhoto: input.CoverPhoto,
	}, nil
}

// normalizeTags trims whitespace, drops empties and deduplicates while
// keeping first-seen order. The result is never nil so tags always
// serialize as an array.
func normalizeTags(tags []string) datatypes.JSONSlice[string] {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return datatypes.JSONSlice[string](result)
}
