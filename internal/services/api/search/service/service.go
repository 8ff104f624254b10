// Package service proxies restaurant search to the places provider
package service

import (
	"context"
	"errors"
	"strings"

	"foodreview/internal/adapters/places/google"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/platform/logger"
)

// Searcher is the provider surface the service needs
type Searcher interface {
	SearchRestaurants(ctx context.Context, query string, lat, lng float64) ([]google.Place, error)
}

// Service is the public service port
type Service interface {
	Search(ctx context.Context, query string, lat, lng float64) ([]google.Place, error)
}

// Svc implements the service port
type Svc struct {
	places Searcher
}

var _ Service = (*Svc)(nil)

// New constructs the service
func New(places Searcher) *Svc {
	if places == nil {
		panic("search.Service requires a non nil Searcher")
	}
	return &Svc{places: places}
}

// Search runs a provider text search near (lat, lng).
// A provider-side error status degrades to an empty list; only transport
// failures surface to the caller
func (s *Svc) Search(ctx context.Context, query string, lat, lng float64) ([]google.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, perrs.InvalidArgf("query required")
	}
	out, err := s.places.SearchRestaurants(ctx, query, lat, lng)
	if err != nil {
		if errors.Is(err, google.ErrAPIStatus) {
			logger.C(ctx).Warn().Err(err).Str("query", query).Msg("places search degraded to empty result")
			return []google.Place{}, nil
		}
		return nil, err
	}
	return out, nil
}
