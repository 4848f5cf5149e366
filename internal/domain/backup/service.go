package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Export snapshots both collections into a portable document. Slices are
// never nil so an exported document always round-trips through Import.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	allTrips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	allPhotos, err := s.repo.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}

	if allTrips == nil {
		allTrips = []trips.Trip{}
	}
	if allPhotos == nil {
		allPhotos = []photos.Photo{}
	}

	return &Document{
		Version:    FormatVersion,
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Trips:      allTrips,
		Photos:     allPhotos,
	}, nil
}

// Import replaces both collections with the document's contents in one
// transaction. The store reissues every id; a mapping from document trip
// ids to stored ids keeps photo attachments intact. Photo rows whose
// tripId has no mapping were orphans in the document already and are
// restored as-is.
func (s *Service) Import(ctx context.Context, doc *Document) (*Result, error) {
	if doc == nil || doc.Trips == nil {
		return nil, fmt.Errorf("%w: trips field is required", ErrInvalidDocument)
	}

	now := s.now().UTC()
	result := &Result{ImportID: uuid.NewString()}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// Same order as cascade delete: photos first, then trips.
		if err := tx.DeleteAllPhotos(ctx); err != nil {
			return err
		}
		if err := tx.DeleteAllTrips(ctx); err != nil {
			return err
		}

		idMap := make(map[int64]int64, len(doc.Trips))
		for _, trip := range doc.Trips {
			record := trip
			record.ID = 0
			if record.CreatedAt.IsZero() {
				record.CreatedAt = now
			}
			if record.UpdatedAt.IsZero() {
				record.UpdatedAt = now
			}
			if err := tx.CreateTrip(ctx, &record); err != nil {
				return fmt.Errorf("restore trip %q: %w", record.Title, err)
			}
			if trip.ID != 0 {
				idMap[trip.ID] = record.ID
			}
			result.Trips++
		}

		for _, photo := range doc.Photos {
			record := photo
			record.ID = 0
			if newID, ok := idMap[record.TripID]; ok {
				record.TripID = newID
			}
			if err := tx.CreatePhoto(ctx, &record); err != nil {
				return fmt.Errorf("restore photo %q: %w", record.Name, err)
			}
			result.Photos++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
