package stats

import (
	"context"
	"sort"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	return s.repo.Overview(ctx)
}

func (s *Service) Countries(ctx context.Context) ([]NameCount, error) {
	return s.repo.CountriesByTripCount(ctx)
}

// Tags ranks every distinct tag by how many trips carry it, most used
// first, ties broken alphabetically.
func (s *Service) Tags(ctx context.Context) ([]NameCount, error) {
	slices, err := s.repo.TagSlices(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, tags := range slices {
		for _, tag := range tags {
			if tag == "" {
				continue
			}
			counts[tag]++
		}
	}

	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked, nil
}
