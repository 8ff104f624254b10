// Package service contains profile read and update workflows
package service

import (
	"context"
	"strings"
	"time"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/follows/domain"
	profdomain "foodreview/internal/services/api/profiles/domain"
	"foodreview/internal/services/api/profiles/repo"
)

// Service is the public service port
type Service interface{ profdomain.ServicePort }

// Svc implements the service port
type Svc struct {
	Repo    repo.Repo
	follows domain.ReaderPort
	now     func() time.Time
}

var _ Service = (*Svc)(nil)

// Options control service behavior
type Options struct {
	// Follows is required, it supplies follower and following totals
	Follows domain.ReaderPort
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("profiles.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("profiles.Service requires a non nil Repo binder")
	}
	if opt.Follows == nil {
		panic("profiles.Service requires a non nil follow graph reader")
	}
	return &Svc{Repo: binder.Bind(db), follows: opt.Follows, now: time.Now}
}

// Me returns the caller's profile with counts.
// A user who never saved a profile still gets counts and their id back
func (s *Svc) Me(ctx context.Context, userID string) (profdomain.Response, error) {
	p, err := s.Repo.Get(ctx, userID)
	if err != nil && !perrs.IsCode(err, perrs.ErrorCodeNotFound) {
		return profdomain.Response{}, err
	}
	p.ID = userID
	return s.respond(ctx, p)
}

// UpdateMe patches the caller's profile, creating the row on first save.
// Nil fields are left alone, provided values are trimmed
func (s *Svc) UpdateMe(ctx context.Context, userID string, in profdomain.UpdateInput) (profdomain.Response, error) {
	p, err := s.Repo.Get(ctx, userID)
	if err != nil {
		if !perrs.IsCode(err, perrs.ErrorCodeNotFound) {
			return profdomain.Response{}, err
		}
		p = profdomain.Profile{ID: userID, CreatedAt: s.now().UTC()}
	}

	if in.Username != nil {
		p.Username = strings.TrimSpace(*in.Username)
	}
	if in.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*in.DisplayName)
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}

	if err := s.Repo.Upsert(ctx, p); err != nil {
		return profdomain.Response{}, err
	}
	return s.respond(ctx, p)
}

func (s *Svc) respond(ctx context.Context, p profdomain.Profile) (profdomain.Response, error) {
	reviews, err := s.Repo.CountReviews(ctx, p.ID)
	if err != nil {
		return profdomain.Response{}, err
	}
	counts, err := s.follows.CountsFor(ctx, p.ID)
	if err != nil {
		return profdomain.Response{}, err
	}
	return profdomain.Response{
		ID:             p.ID,
		Username:       p.Username,
		DisplayName:    p.DisplayName,
		AvatarURL:      p.AvatarURL,
		Bio:            p.Bio,
		ReviewCount:    reviews,
		FollowerCount:  counts.Followers,
		FollowingCount: counts.Following,
	}, nil
}
