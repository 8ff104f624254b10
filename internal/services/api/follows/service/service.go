// Package service exposes the read-only follow graph
package service

import (
	"context"

	"foodreview/internal/modkit/repokit"
	"foodreview/internal/services/api/follows/domain"
	"foodreview/internal/services/api/follows/repo"
)

// Service is the public service port
type Service interface{ domain.ReaderPort }

// Svc implements the service port
type Svc struct {
	Repo repo.Repo
}

var _ Service = (*Svc)(nil)

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("follows.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("follows.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// FollowingOf returns the ids userID follows
// an unknown user simply follows nobody
func (s *Svc) FollowingOf(ctx context.Context, userID string) ([]string, error) {
	return s.Repo.FollowingOf(ctx, userID)
}

// CountsFor returns follower and following totals for userID
func (s *Svc) CountsFor(ctx context.Context, userID string) (domain.Counts, error) {
	followers, err := s.Repo.CountFollowers(ctx, userID)
	if err != nil {
		return domain.Counts{}, err
	}
	following, err := s.Repo.CountFollowing(ctx, userID)
	if err != nil {
		return domain.Counts{}, err
	}
	return domain.Counts{Followers: followers, Following: following}, nil
}
