package trips

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeRepo struct {
	trips  map[int64]Trip
	photos map[int64]int // trip id -> attached photo count
	nextID int64

	calls           []string
	failPhotoDelete bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{trips: make(map[int64]Trip), photos: make(map[int64]int)}
}

func (f *fakeRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	tripSnap := make(map[int64]Trip, len(f.trips))
	for id, trip := range f.trips {
		tripSnap[id] = trip
	}
	photoSnap := make(map[int64]int, len(f.photos))
	for id, n := range f.photos {
		photoSnap[id] = n
	}

	if err := fn(f); err != nil {
		f.trips = tripSnap
		f.photos = photoSnap
		return err
	}
	return nil
}

func (f *fakeRepo) Create(ctx context.Context, trip *Trip) error {
	f.nextID++
	trip.ID = f.nextID
	f.trips[trip.ID] = *trip
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, trip *Trip) error {
	f.trips[trip.ID] = *trip
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Trip, error) {
	trip, ok := f.trips[id]
	if !ok {
		return nil, ErrTripNotFound
	}
	return &trip, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]Trip, error) {
	items := make([]Trip, 0, len(f.trips))
	for _, trip := range f.trips {
		items = append(items, trip)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartDate > items[j].StartDate })
	return items, nil
}

func (f *fakeRepo) ListRecent(ctx context.Context, limit int) ([]Trip, error) {
	items, _ := f.List(ctx)
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeRepo) ListFavorites(ctx context.Context) ([]Trip, error) {
	items := make([]Trip, 0)
	for _, trip := range f.trips {
		if trip.Favorite {
			items = append(items, trip)
		}
	}
	return items, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.calls = append(f.calls, "delete trip")
	if _, ok := f.trips[id]; !ok {
		return false, nil
	}
	delete(f.trips, id)
	return true, nil
}

func (f *fakeRepo) DeletePhotosByTrip(ctx context.Context, tripID int64) (int64, error) {
	f.calls = append(f.calls, "delete photos")
	if f.failPhotoDelete {
		return 0, errors.New("photo delete failed")
	}
	n := f.photos[tripID]
	delete(f.photos, tripID)
	return int64(n), nil
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validInput() TripInput {
	return TripInput{
		Title:     "Kyoto in autumn",
		Country:   "Japan",
		City:      "Kyoto",
		StartDate: "2024-11-02",
		EndDate:   "2024-11-09",
		Tags:      []string{"temples", "food"},
	}
}

func TestAddTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	input := validInput()
	input.Tags = []string{" food ", "food", "", "temples"}

	trip, err := svc.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("expected trip, got error: %v", err)
	}
	if trip.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if trip.CreatedAt.IsZero() || !trip.CreatedAt.Equal(trip.UpdatedAt) {
		t.Fatalf("expected matching timestamps, got createdAt=%v updatedAt=%v", trip.CreatedAt, trip.UpdatedAt)
	}

	wantTags := []string{"food", "temples"}
	if len(trip.Tags) != len(wantTags) {
		t.Fatalf("expected tags %v, got %v", wantTags, trip.Tags)
	}
	for i, tag := range wantTags {
		if trip.Tags[i] != tag {
			t.Fatalf("expected tags %v, got %v", wantTags, trip.Tags)
		}
	}
}

func TestAddTripValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TripInput)
	}{
		{"missing title", func(in *TripInput) { in.Title = "  " }},
		{"missing country", func(in *TripInput) { in.Country = "" }},
		{"missing city", func(in *TripInput) { in.City = "" }},
		{"missing start date", func(in *TripInput) { in.StartDate = "" }},
		{"malformed start date", func(in *TripInput) { in.StartDate = "02.11.2024" }},
		{"malformed end date", func(in *TripInput) { in.EndDate = "next week" }},
		{"end before start", func(in *TripInput) { in.EndDate = "2024-10-01" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo)

			input := validInput()
			tc.mutate(&input)

			if _, err := svc.Add(context.Background(), input); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.trips) != 0 {
				t.Fatal("expected nothing stored after rejected input")
			}
		})
	}
}

func TestUpdateTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected trip, got error: %v", err)
	}

	svc.now = func() time.Time { return time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC) }

	input := validInput()
	input.Title = "Kyoto and Nara"
	input.Favorite = true

	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("expected updated trip, got error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, updated.ID)
	}
	if updated.Title != "Kyoto and Nara" || !updated.Favorite {
		t.Fatalf("expected replaced fields, got %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected createdAt preserved, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updatedAt bumped, got %v", updated.UpdatedAt)
	}
}

func TestUpdateTripNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if _, err := svc.Update(context.Background(), 99, validInput()); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestDeleteTripCascades(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	trip, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected trip, got error: %v", err)
	}
	repo.photos[trip.ID] = 3

	if err := svc.Delete(context.Background(), trip.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}

	if len(repo.calls) != 2 || repo.calls[0] != "delete photos" || repo.calls[1] != "delete trip" {
		t.Fatalf("expected photos deleted before trip, got %v", repo.calls)
	}
	if _, ok := repo.trips[trip.ID]; ok {
		t.Fatal("expected trip removed")
	}
	if _, ok := repo.photos[trip.ID]; ok {
		t.Fatal("expected attached photos removed")
	}
}

func TestDeleteTripNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestDeleteTripRollsBackOnPhotoFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	trip, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected trip, got error: %v", err)
	}
	repo.photos[trip.ID] = 2
	repo.failPhotoDelete = true

	if err := svc.Delete(context.Background(), trip.ID); err == nil {
		t.Fatal("expected delete to fail")
	}
	if _, ok := repo.trips[trip.ID]; !ok {
		t.Fatal("expected trip to survive a failed cascade")
	}
	if repo.photos[trip.ID] != 2 {
		t.Fatal("expected photo state restored after rollback")
	}
}

func TestSearchTrips(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	first := validInput()
	second := TripInput{
		Title:     "Lisbon long weekend",
		Country:   "Portugal",
		City:      "Lisbon",
		Place:     "Alfama",
		StartDate: "2024-03-15",
		Tags:      []string{"Beach Trip"},
	}
	for _, input := range []TripInput{first, second} {
		if _, err := svc.Add(context.Background(), input); err != nil {
			t.Fatalf("expected trip, got error: %v", err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"kyoto", 1},
		{"PORTUGAL", 1},
		{"alfama", 1},
		{"beach", 1},
		{"o", 2},
		{"nowhere", 0},
		{"   ", 2},
	}

	for _, tc := range tests {
		got, err := svc.Search(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("search %q: unexpected error: %v", tc.query, err)
		}
		if len(got) != tc.want {
			t.Fatalf("search %q: expected %d results, got %d", tc.query, tc.want, len(got))
		}
	}
}

func TestRecentZeroLimitReturnsAll(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	for _, date := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		input := validInput()
		input.StartDate = date
		input.EndDate = ""
		if _, err := svc.Add(context.Background(), input); err != nil {
			t.Fatalf("expected trip, got error: %v", err)
		}
	}

	all, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected trips, got error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 trips, got %d", len(all))
	}

	two, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected trips, got error: %v", err)
	}
	if len(two) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(two))
	}
	if two[0].StartDate != "2024-03-01" {
		t.Fatalf("expected newest trip first, got %s", two[0].StartDate)
	}
}
