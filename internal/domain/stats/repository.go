package stats

import "context"

// Repository supplies the raw aggregates. Country ranking happens in
// SQL; tags come back as one slice per trip and are counted in the
// service.
type Repository interface {
	Overview(ctx context.Context) (Overview, error)
	CountriesByTripCount(ctx context.Context) ([]NameCount, error)
	TagSlices(ctx context.Context) ([][]string, error)
}
