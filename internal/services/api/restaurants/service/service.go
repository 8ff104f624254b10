// Package service contains restaurant identity workflows
package service

import (
	"context"
	"strings"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/platform/logger"
	"foodreview/internal/platform/metrics"
	"foodreview/internal/services/api/restaurants/domain"
	"foodreview/internal/services/api/restaurants/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	Repo    repo.Repo
	metrics *metrics.Metrics
}

var _ Service = (*Svc)(nil)

// Options control service behavior
type Options struct {
	// Metrics is optional; resolution outcomes are counted when set
	Metrics *metrics.Metrics
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("restaurants.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("restaurants.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), metrics: opt.Metrics}
}

// Resolve maps an external place descriptor onto exactly one identity row.
// The fast path is a plain select. On miss it inserts, and when the insert
// loses a creation race to a concurrent caller it re-reads the winner's row
func (s *Svc) Resolve(ctx context.Context, ref domain.Ref) (domain.Restaurant, error) {
	ref.Provider = strings.TrimSpace(ref.Provider)
	ref.ProviderID = strings.TrimSpace(ref.ProviderID)
	if ref.Provider == "" || ref.ProviderID == "" {
		return domain.Restaurant{}, perrs.InvalidArgf("place reference requires provider and providerId")
	}

	got, err := s.Repo.FindByProviderID(ctx, ref.Provider, ref.ProviderID)
	if err == nil {
		s.count(metrics.OutcomeHit)
		return got, nil
	}
	if !perrs.IsCode(err, perrs.ErrorCodeNotFound) {
		return domain.Restaurant{}, err
	}

	created, err := s.Repo.Insert(ctx, ref)
	if err == nil {
		s.count(metrics.OutcomeCreated)
		return created, nil
	}
	if !perrs.IsCode(err, perrs.ErrorCodeDuplicateKey) {
		return domain.Restaurant{}, err
	}

	// a concurrent caller created the row between our select and insert
	got, err = s.Repo.FindByProviderID(ctx, ref.Provider, ref.ProviderID)
	if err != nil {
		if perrs.IsCode(err, perrs.ErrorCodeNotFound) {
			logger.C(ctx).Error().
				Str("provider", ref.Provider).
				Str("provider_id", ref.ProviderID).
				Msg("identity vanished after duplicate key")
			return domain.Restaurant{}, perrs.Unavailablef("place resolution raced, retry")
		}
		return domain.Restaurant{}, err
	}
	s.count(metrics.OutcomeRecovered)
	return got, nil
}

// Trending lists all restaurants ranked by review volume
func (s *Svc) Trending(ctx context.Context) ([]domain.TrendingRow, error) {
	return s.Repo.ListWithReviewCounts(ctx)
}

// Detail returns one restaurant with its reviews attached
func (s *Svc) Detail(ctx context.Context, id string) (domain.Detail, error) {
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return domain.Detail{}, err
	}
	reviews, err := s.Repo.ReviewsFor(ctx, id)
	if err != nil {
		return domain.Detail{}, err
	}
	return domain.Detail{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Lat:         r.Lat,
		Lng:         r.Lng,
		PhotoURL:    r.PhotoURL,
		Categories:  r.Categories,
		PriceTier:   r.PriceTier,
		ReviewCount: len(reviews),
		Reviews:     reviews,
	}, nil
}

func (s *Svc) count(outcome string) {
	if s.metrics != nil {
		s.metrics.PlaceResolutions.WithLabelValues(outcome).Inc()
	}
}
