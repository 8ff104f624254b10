// Package repo provides the profiles repository implementation
package repo

import (
	"context"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/profiles/domain"
)

// Repo is the profiles persistence surface used by the service layer
type Repo interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) error
	CountReviews(ctx context.Context, userID string) (int64, error)
}

type (
	// PG is a Postgres implementation of the profiles repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Get loads one profile row, NotFound when the user never saved one
func (r *queries) Get(ctx context.Context, userID string) (domain.Profile, error) {
	const sql = `
		SELECT id, COALESCE(username, ''), COALESCE(display_name, ''),
		       COALESCE(avatar_url, ''), COALESCE(bio, ''), created_at
		FROM profiles
		WHERE id = $1
	`
	var p domain.Profile
	err := r.q.QueryRow(ctx, sql, userID).Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.AvatarURL, &p.Bio, &p.CreatedAt,
	)
	if err != nil {
		return domain.Profile{}, perrs.FromPostgres(err, "profiles get")
	}
	return p, nil
}

// Upsert writes the profile row, creating it on first save
func (r *queries) Upsert(ctx context.Context, p domain.Profile) error {
	const sql = `
		INSERT INTO profiles (id, username, display_name, avatar_url, bio, created_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		ON CONFLICT (id) DO UPDATE
		SET username     = EXCLUDED.username,
		    display_name = EXCLUDED.display_name,
		    avatar_url   = EXCLUDED.avatar_url,
		    bio          = EXCLUDED.bio
	`
	_, err := r.q.Exec(ctx, sql, p.ID, p.Username, p.DisplayName, p.AvatarURL, p.Bio, p.CreatedAt)
	if err != nil {
		return perrs.FromPostgres(err, "profiles upsert")
	}
	return nil
}

// CountReviews counts reviews authored by userID
func (r *queries) CountReviews(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, perrs.FromPostgres(err, "profiles count_reviews")
	}
	return n, nil
}
