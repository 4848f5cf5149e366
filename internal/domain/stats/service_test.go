package stats

import (
	"context"
	"testing"
)

type fakeRepo struct {
	overview  Overview
	countries []NameCount
	tags      [][]string
}

func (f *fakeRepo) Overview(ctx context.Context) (Overview, error) {
	return f.overview, nil
}

func (f *fakeRepo) CountriesByTripCount(ctx context.Context) ([]NameCount, error) {
	return f.countries, nil
}

func (f *fakeRepo) TagSlices(ctx context.Context) ([][]string, error) {
	return f.tags, nil
}

func TestTagsRankedByCountThenName(t *testing.T) {
	repo := &fakeRepo{tags: [][]string{
		{"beach", "food"},
		{"food", "hiking"},
		{"food"},
		{"beach"},
		{"", "hiking"},
	}}
	svc := NewService(repo)

	ranked, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("expected ranking, got error: %v", err)
	}

	want := []NameCount{
		{Name: "food", Count: 3},
		{Name: "beach", Count: 2},
		{Name: "hiking", Count: 2},
	}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(ranked))
	}
	for i, entry := range want {
		if ranked[i] != entry {
			t.Fatalf("expected %+v at position %d, got %+v", entry, i, ranked[i])
		}
	}
}

func TestTagsEmpty(t *testing.T) {
	svc := NewService(&fakeRepo{})

	ranked, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("expected empty ranking, got error: %v", err)
	}
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", ranked)
	}
}

func TestOverviewPassThrough(t *testing.T) {
	repo := &fakeRepo{overview: Overview{Trips: 4, Countries: 2, Cities: 3, Places: 1, Photos: 9}}
	svc := NewService(repo)

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("expected overview, got error: %v", err)
	}
	if got != repo.overview {
		t.Fatalf("expected %+v, got %+v", repo.overview, got)
	}
}
