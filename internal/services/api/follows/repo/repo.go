// Package repo provides the follow graph repository implementation
package repo

import (
	"context"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
)

// Repo is the follow graph persistence surface used by the service layer
type Repo interface {
	FollowingOf(ctx context.Context, userID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type (
	// PG is a Postgres implementation of the follows repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// FollowingOf lists the ids userID follows, newest edge first
func (r *queries) FollowingOf(ctx context.Context, userID string) ([]string, error) {
	const sql = `
		SELECT following_id
		FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perrs.FromPostgres(err, "follows following_of")
	}
	defer rows.Close()

	out := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, perrs.FromPostgres(err, "follows following_of scan")
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, perrs.FromPostgres(err, "follows following_of rows")
	}
	return out, nil
}

// CountFollowers counts edges pointing at userID
func (r *queries) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, perrs.FromPostgres(err, "follows count_followers")
	}
	return n, nil
}

// CountFollowing counts edges leaving userID
func (r *queries) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, perrs.FromPostgres(err, "follows count_following")
	}
	return n, nil
}
