package service

import (
	"context"
	"testing"

	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/restaurants/domain"
)

type fakeRepo struct {
	byKey   map[string]domain.Restaurant
	findErr []error // popped per FindByProviderID call when non-empty
	insert  func(domain.Ref) (domain.Restaurant, error)

	finds   int
	inserts int
}

func key(provider, providerID string) string { return provider + "|" + providerID }

func (f *fakeRepo) FindByProviderID(_ context.Context, provider, providerID string) (domain.Restaurant, error) {
	f.finds++
	if len(f.findErr) > 0 {
		err := f.findErr[0]
		f.findErr = f.findErr[1:]
		if err != nil {
			return domain.Restaurant{}, err
		}
	}
	if r, ok := f.byKey[key(provider, providerID)]; ok {
		return r, nil
	}
	return domain.Restaurant{}, perrs.NotFoundf("restaurant not found")
}

func (f *fakeRepo) Insert(_ context.Context, ref domain.Ref) (domain.Restaurant, error) {
	f.inserts++
	return f.insert(ref)
}

func (f *fakeRepo) GetByID(context.Context, string) (domain.Restaurant, error) {
	return domain.Restaurant{}, perrs.NotFoundf("not implemented")
}

func (f *fakeRepo) ListWithReviewCounts(context.Context) ([]domain.TrendingRow, error) {
	return nil, nil
}

func (f *fakeRepo) ReviewsFor(context.Context, string) ([]domain.ReviewRow, error) {
	return nil, nil
}

func TestResolve_RejectsBlankReference(t *testing.T) {
	t.Parallel()

	s := &Svc{Repo: &fakeRepo{}}
	for _, ref := range []domain.Ref{
		{},
		{Provider: "google"},
		{ProviderID: "abc"},
		{Provider: "   ", ProviderID: "abc"},
		{Provider: "google", ProviderID: "\t"},
	} {
		_, err := s.Resolve(context.Background(), ref)
		if !perrs.IsCode(err, perrs.ErrorCodeInvalidArgument) {
			t.Fatalf("ref %+v: want InvalidArgument, got %v", ref, err)
		}
	}
}

func TestResolve_ExistingRowIsReturned(t *testing.T) {
	t.Parallel()

	existing := domain.Restaurant{ID: "r1", Provider: "google", ProviderID: "p1", Name: "Joe's"}
	f := &fakeRepo{byKey: map[string]domain.Restaurant{key("google", "p1"): existing}}
	s := &Svc{Repo: f}

	got, err := s.Resolve(context.Background(), domain.Ref{Provider: "google", ProviderID: "p1", Name: "ignored"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != "r1" {
		t.Fatalf("got id %q, want r1", got.ID)
	}
	if f.inserts != 0 {
		t.Fatalf("existing row should not trigger an insert")
	}
}

func TestResolve_CreatesOnMiss(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{byKey: map[string]domain.Restaurant{}}
	f.insert = func(ref domain.Ref) (domain.Restaurant, error) {
		return domain.Restaurant{ID: "new", Provider: ref.Provider, ProviderID: ref.ProviderID, Name: ref.Name}, nil
	}
	s := &Svc{Repo: f}

	got, err := s.Resolve(context.Background(), domain.Ref{Provider: "google", ProviderID: "p2", Name: "Luigi's"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != "new" || f.inserts != 1 {
		t.Fatalf("got %+v inserts=%d", got, f.inserts)
	}
}

func TestResolve_TrimsReferenceBeforeLookup(t *testing.T) {
	t.Parallel()

	existing := domain.Restaurant{ID: "r1"}
	f := &fakeRepo{byKey: map[string]domain.Restaurant{key("google", "p1"): existing}}
	s := &Svc{Repo: f}

	got, err := s.Resolve(context.Background(), domain.Ref{Provider: " google ", ProviderID: " p1 "})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != "r1" {
		t.Fatalf("trimmed ref should find the row, got %+v", got)
	}
}

func TestResolve_RecoversLostCreationRace(t *testing.T) {
	t.Parallel()

	winner := domain.Restaurant{ID: "winner", Provider: "google", ProviderID: "p3"}
	f := &fakeRepo{
		byKey: map[string]domain.Restaurant{},
		// first select misses, the one after the duplicate key hits
		findErr: []error{perrs.NotFoundf("miss")},
	}
	f.insert = func(domain.Ref) (domain.Restaurant, error) {
		f.byKey[key("google", "p3")] = winner
		return domain.Restaurant{}, perrs.DuplicateKeyf("restaurants_provider_unique")
	}
	s := &Svc{Repo: f}

	got, err := s.Resolve(context.Background(), domain.Ref{Provider: "google", ProviderID: "p3"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != "winner" {
		t.Fatalf("got id %q, want the concurrent winner's row", got.ID)
	}
	if f.finds != 2 || f.inserts != 1 {
		t.Fatalf("finds=%d inserts=%d, want 2 and 1", f.finds, f.inserts)
	}
}

func TestResolve_RaceThenVanishIsUnavailable(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{
		byKey:   map[string]domain.Restaurant{},
		findErr: []error{perrs.NotFoundf("miss"), perrs.NotFoundf("still missing")},
	}
	f.insert = func(domain.Ref) (domain.Restaurant, error) {
		return domain.Restaurant{}, perrs.DuplicateKeyf("restaurants_provider_unique")
	}
	s := &Svc{Repo: f}

	_, err := s.Resolve(context.Background(), domain.Ref{Provider: "google", ProviderID: "p4"})
	if !perrs.IsCode(err, perrs.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable after duplicate then miss, got %v", err)
	}
}

func TestResolve_UnexpectedInsertErrorPassesThrough(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{byKey: map[string]domain.Restaurant{}}
	f.insert = func(domain.Ref) (domain.Restaurant, error) {
		return domain.Restaurant{}, perrs.DBf("connection reset")
	}
	s := &Svc{Repo: f}

	_, err := s.Resolve(context.Background(), domain.Ref{Provider: "google", ProviderID: "p5"})
	if !perrs.IsCode(err, perrs.ErrorCodeDB) {
		t.Fatalf("want DB error passthrough, got %v", err)
	}
	if f.finds != 1 {
		t.Fatalf("a non-duplicate insert error should not re-select, finds=%d", f.finds)
	}
}
