// Package repo provides the reviews repository implementation
package repo

import (
	"context"
	"time"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/reviews/domain"
)

// Repo is the reviews persistence surface used by the service layer
type Repo interface {
	AuthorExists(ctx context.Context, userID string) (bool, error)
	Insert(ctx context.Context, rec domain.Review) (string, error)
	GetRecord(ctx context.Context, reviewID string) (domain.Review, error)
	UpdateRecord(ctx context.Context, rec domain.Review) error
	GetView(ctx context.Context, reviewID string) (domain.Response, error)
	ListViewsByAuthor(ctx context.Context, userID string) ([]domain.Response, error)
}

type (
	// PG is a Postgres implementation of the reviews repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// AuthorExists reports whether a profile row exists for userID
func (r *queries) AuthorExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, perrs.FromPostgres(err, "reviews author_exists")
	}
	return exists, nil
}

// Insert writes a new review row and returns its id
func (r *queries) Insert(ctx context.Context, rec domain.Review) (string, error) {
	const sql = `
		INSERT INTO reviews (user_id, restaurant_id, rating, text, photo_urls, dishes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $7)
		RETURNING id
	`
	var id string
	err := r.q.QueryRow(ctx, sql,
		rec.UserID, rec.RestaurantID, rec.Rating, rec.Text, rec.PhotoURLs, rec.Dishes, rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", perrs.FromPostgres(err, "reviews insert")
	}
	return id, nil
}

// GetRecord loads the raw review row for ownership checks and patching
func (r *queries) GetRecord(ctx context.Context, reviewID string) (domain.Review, error) {
	const sql = `
		SELECT id, user_id, restaurant_id, rating, COALESCE(text, ''),
		       photo_urls, dishes, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	var rec domain.Review
	err := r.q.QueryRow(ctx, sql, reviewID).Scan(
		&rec.ID, &rec.UserID, &rec.RestaurantID, &rec.Rating, &rec.Text,
		&rec.PhotoURLs, &rec.Dishes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.Review{}, perrs.FromPostgres(err, "reviews get_record")
	}
	return rec, nil
}

// UpdateRecord overwrites the mutable columns of one review
func (r *queries) UpdateRecord(ctx context.Context, rec domain.Review) error {
	const sql = `
		UPDATE reviews
		SET rating = $2, text = NULLIF($3, ''), photo_urls = $4, dishes = $5, updated_at = $6
		WHERE id = $1
	`
	ct, err := r.q.Exec(ctx, sql,
		rec.ID, rec.Rating, rec.Text, rec.PhotoURLs, rec.Dishes, rec.UpdatedAt,
	)
	if err != nil {
		return perrs.FromPostgres(err, "reviews update")
	}
	if ct.RowsAffected() == 0 {
		return perrs.NotFoundf("review %s not found", rec.ID)
	}
	return nil
}

const viewSelect = `
	SELECT
		v.id, v.user_id, COALESCE(p.username, ''), COALESCE(p.avatar_url, ''),
		r.id, r.name, COALESCE(r.address, ''),
		v.rating, COALESCE(v.text, ''), v.photo_urls, v.dishes, v.created_at
	FROM reviews v
	JOIN restaurants r ON r.id = v.restaurant_id
	LEFT JOIN profiles p ON p.id = v.user_id
`

func scanView(row repokit.Row) (domain.Response, error) {
	var (
		out       domain.Response
		createdAt time.Time
	)
	err := row.Scan(
		&out.ID, &out.UserID, &out.UserName, &out.UserAvatar,
		&out.RestaurantID, &out.RestaurantName, &out.RestaurantAddress,
		&out.Rating, &out.Text, &out.PhotoURLs, &out.Items, &createdAt,
	)
	if err != nil {
		return domain.Response{}, err
	}
	out.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	if out.PhotoURLs == nil {
		out.PhotoURLs = []string{}
	}
	if out.Items == nil {
		out.Items = []string{}
	}
	return out, nil
}

// GetView loads one review joined with its author and restaurant
func (r *queries) GetView(ctx context.Context, reviewID string) (domain.Response, error) {
	out, err := scanView(r.q.QueryRow(ctx, viewSelect+` WHERE v.id = $1`, reviewID))
	if err != nil {
		return domain.Response{}, perrs.FromPostgres(err, "reviews get_view")
	}
	return out, nil
}

// ListViewsByAuthor lists one author's reviews, newest first
func (r *queries) ListViewsByAuthor(ctx context.Context, userID string) ([]domain.Response, error) {
	const sql = viewSelect + ` WHERE v.user_id = $1 ORDER BY v.created_at DESC, v.id DESC`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perrs.FromPostgres(err, "reviews list_by_author")
	}
	defer rows.Close()

	out := make([]domain.Response, 0, 16)
	for rows.Next() {
		item, err := scanView(rows)
		if err != nil {
			return nil, perrs.FromPostgres(err, "reviews list_by_author scan")
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, perrs.FromPostgres(err, "reviews list_by_author rows")
	}
	return out, nil
}
