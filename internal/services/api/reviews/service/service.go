// Package service contains review write and read workflows
package service

import (
	"context"
	"time"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/platform/metrics"
	"foodreview/internal/services/api/reviews/domain"
	"foodreview/internal/services/api/reviews/repo"
	restdomain "foodreview/internal/services/api/restaurants/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	Repo     repo.Repo
	resolver restdomain.ResolverPort
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ Service = (*Svc)(nil)

// Options control service behavior
type Options struct {
	// Resolver is required, it maps place descriptors onto restaurant rows
	Resolver restdomain.ResolverPort

	// Metrics is optional
	Metrics *metrics.Metrics
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("reviews.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reviews.Service requires a non nil Repo binder")
	}
	if opt.Resolver == nil {
		panic("reviews.Service requires a non nil Resolver")
	}
	return &Svc{
		Repo:     binder.Bind(db),
		resolver: opt.Resolver,
		metrics:  opt.Metrics,
		now:      time.Now,
	}
}

// Create resolves the place, verifies the author, and writes a new review.
// Both timestamps start equal
func (s *Svc) Create(ctx context.Context, authorID string, in domain.CreateInput) (domain.Response, error) {
	if !domain.ValidRating(in.Rating) {
		return domain.Response{}, perrs.Validationf("rating must be between %d and %d", domain.RatingMin, domain.RatingMax)
	}

	restaurant, err := s.resolver.Resolve(ctx, restdomain.Ref{
		Provider:   in.Provider,
		ProviderID: in.ProviderID,
		Name:       in.Name,
		Address:    in.Address,
		Lat:        in.Lat,
		Lng:        in.Lng,
	})
	if err != nil {
		return domain.Response{}, err
	}

	ok, err := s.Repo.AuthorExists(ctx, authorID)
	if err != nil {
		return domain.Response{}, err
	}
	if !ok {
		return domain.Response{}, perrs.NotFoundf("author profile %s not found", authorID)
	}

	now := s.now().UTC()
	id, err := s.Repo.Insert(ctx, domain.Review{
		UserID:       authorID,
		RestaurantID: restaurant.ID,
		Rating:       in.Rating,
		Text:         in.Text,
		PhotoURLs:    in.PhotoURLs,
		Dishes:       in.Dishes,
		CreatedAt:    now,
	})
	if err != nil {
		return domain.Response{}, err
	}
	if s.metrics != nil {
		s.metrics.ReviewsWritten.Inc()
	}
	return s.Repo.GetView(ctx, id)
}

// Update applies a partial patch to an owned review.
// Absent fields keep their stored value, explicit nulls clear the column,
// created_at never changes
func (s *Svc) Update(ctx context.Context, authorID, reviewID string, in domain.UpdateInput) (domain.Response, error) {
	rec, err := s.Repo.GetRecord(ctx, reviewID)
	if err != nil {
		return domain.Response{}, err
	}
	if rec.UserID != authorID {
		return domain.Response{}, perrs.Forbiddenf("review %s is not owned by caller", reviewID)
	}

	if in.Rating.Set {
		if !in.Rating.Valid || !domain.ValidRating(in.Rating.Value) {
			return domain.Response{}, perrs.Validationf(
				"rating must be between %d and %d", domain.RatingMin, domain.RatingMax)
		}
		rec.Rating = in.Rating.Value
	}
	if in.Text.Set {
		rec.Text = in.Text.Value
	}
	if in.Dishes.Set {
		rec.Dishes = in.Dishes.Value
	}
	if in.PhotoURLs.Set {
		rec.PhotoURLs = in.PhotoURLs.Value
	}
	rec.UpdatedAt = s.now().UTC()

	if err := s.Repo.UpdateRecord(ctx, rec); err != nil {
		return domain.Response{}, err
	}
	if s.metrics != nil {
		s.metrics.ReviewsWritten.Inc()
	}
	return s.Repo.GetView(ctx, reviewID)
}

// Get loads one review by id
func (s *Svc) Get(ctx context.Context, reviewID string) (domain.Response, error) {
	return s.Repo.GetView(ctx, reviewID)
}

// ListByAuthor lists one author's reviews, newest first
func (s *Svc) ListByAuthor(ctx context.Context, authorID string) ([]domain.Response, error) {
	return s.Repo.ListViewsByAuthor(ctx, authorID)
}
