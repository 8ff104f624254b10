// Package service assembles personal feeds from the follow graph
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/platform/metrics"
	"foodreview/internal/services/api/feed/domain"
	"foodreview/internal/services/api/feed/repo"
	followdomain "foodreview/internal/services/api/follows/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	Repo    repo.Repo
	follows followdomain.ReaderPort
	metrics *metrics.Metrics
}

var _ Service = (*Svc)(nil)

// Options control service behavior
type Options struct {
	// Follows is required, it supplies the viewer's follow set
	Follows followdomain.ReaderPort

	// Metrics is optional
	Metrics *metrics.Metrics
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("feed.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feed.Service requires a non nil Repo binder")
	}
	if opt.Follows == nil {
		panic("feed.Service requires a non nil follow graph reader")
	}
	return &Svc{Repo: binder.Bind(db), follows: opt.Follows, metrics: opt.Metrics}
}

// PersonalFeed returns recent reviews from everyone the viewer follows plus
// the viewer's own, newest first, capped at domain.MaxEntries.
// The viewer check and the follow set load run concurrently
func (s *Svc) PersonalFeed(ctx context.Context, viewerID string) ([]domain.Entry, error) {
	if s.metrics != nil {
		timer := s.metrics.FeedDurationTimer()
		defer timer.ObserveDuration()
	}

	var (
		exists    bool
		following []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := s.Repo.ViewerExists(gctx, viewerID)
		if err != nil {
			return err
		}
		exists = ok
		return nil
	})
	g.Go(func() error {
		ids, err := s.follows.FollowingOf(gctx, viewerID)
		if err != nil {
			return err
		}
		following = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !exists {
		return nil, perrs.NotFoundf("viewer profile %s not found", viewerID)
	}

	authors := make([]string, 0, len(following)+1)
	seen := make(map[string]struct{}, len(following)+1)
	for _, id := range append(following, viewerID) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		authors = append(authors, id)
	}

	return s.Repo.ListForUsers(ctx, authors, domain.MaxEntries)
}
