// Package repo provides the feed repository implementation
package repo

import (
	"context"
	"time"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/feed/domain"
)

// Repo is the feed persistence surface used by the service layer
type Repo interface {
	ViewerExists(ctx context.Context, viewerID string) (bool, error)
	ListForUsers(ctx context.Context, userIDs []string, limit int) ([]domain.Entry, error)
}

type (
	// PG is a Postgres implementation of the feed repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// ViewerExists reports whether a profile row exists for viewerID
func (r *queries) ViewerExists(ctx context.Context, viewerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, viewerID).Scan(&exists)
	if err != nil {
		return false, perrs.FromPostgres(err, "feed viewer_exists")
	}
	return exists, nil
}

// ListForUsers returns reviews authored by any of userIDs, newest first.
// Ties on created_at break on id so the order is total
func (r *queries) ListForUsers(ctx context.Context, userIDs []string, limit int) ([]domain.Entry, error) {
	const sql = `
		SELECT
			v.id, v.user_id, COALESCE(p.username, ''), COALESCE(p.avatar_url, ''),
			r.id, r.name, COALESCE(r.address, ''),
			v.rating, COALESCE(v.text, ''), v.photo_urls, v.dishes, v.created_at
		FROM reviews v
		JOIN restaurants r ON r.id = v.restaurant_id
		LEFT JOIN profiles p ON p.id = v.user_id
		WHERE v.user_id = ANY($1)
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $2
	`
	rows, err := r.q.Query(ctx, sql, userIDs, limit)
	if err != nil {
		return nil, perrs.FromPostgres(err, "feed list_for_users")
	}
	defer rows.Close()

	out := make([]domain.Entry, 0, limit)
	for rows.Next() {
		var (
			e         domain.Entry
			createdAt time.Time
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.UserName, &e.UserAvatar,
			&e.RestaurantID, &e.RestaurantName, &e.RestaurantAddress,
			&e.Rating, &e.Text, &e.PhotoURLs, &e.Items, &createdAt,
		); err != nil {
			return nil, perrs.FromPostgres(err, "feed list_for_users scan")
		}
		e.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		if e.PhotoURLs == nil {
			e.PhotoURLs = []string{}
		}
		if e.Items == nil {
			e.Items = []string{}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, perrs.FromPostgres(err, "feed list_for_users rows")
	}
	return out, nil
}
