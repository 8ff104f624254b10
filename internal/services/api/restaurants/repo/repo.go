// Package repo provides the restaurants repository implementation
package repo

import (
	"context"
	"time"

	"foodreview/internal/modkit/repokit"
	perrs "foodreview/internal/platform/errors"
	"foodreview/internal/services/api/restaurants/domain"
)

// Repo is the restaurants persistence surface used by the service layer
type Repo interface {
	FindByProviderID(ctx context.Context, provider, providerID string) (domain.Restaurant, error)
	Insert(ctx context.Context, ref domain.Ref) (domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (domain.Restaurant, error)
	ListWithReviewCounts(ctx context.Context) ([]domain.TrendingRow, error)
	ReviewsFor(ctx context.Context, restaurantID string) ([]domain.ReviewRow, error)
}

type (
	// PG is a Postgres implementation of the restaurants repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const restaurantCols = `
	id, provider, provider_id, name, COALESCE(address, ''), lat, lng,
	COALESCE(photo_url, ''), categories, price_tier, created_at, updated_at
`

func scanRestaurant(row repokit.Row) (domain.Restaurant, error) {
	var r domain.Restaurant
	err := row.Scan(
		&r.ID, &r.Provider, &r.ProviderID, &r.Name, &r.Address, &r.Lat, &r.Lng,
		&r.PhotoURL, &r.Categories, &r.PriceTier, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// FindByProviderID loads the identity for an external (provider, provider_id) pair
func (r *queries) FindByProviderID(ctx context.Context, provider, providerID string) (domain.Restaurant, error) {
	const sql = `
		SELECT ` + restaurantCols + `
		FROM restaurants
		WHERE provider = $1 AND provider_id = $2
	`
	out, err := scanRestaurant(r.q.QueryRow(ctx, sql, provider, providerID))
	if err != nil {
		return domain.Restaurant{}, perrs.FromPostgres(err, "restaurants find_by_provider")
	}
	return out, nil
}

// Insert creates a new identity row and returns it
// a concurrent insert of the same pair surfaces as a duplicate key error
func (r *queries) Insert(ctx context.Context, ref domain.Ref) (domain.Restaurant, error) {
	const sql = `
		INSERT INTO restaurants (provider, provider_id, name, address, lat, lng, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NOW())
		RETURNING ` + restaurantCols
	out, err := scanRestaurant(r.q.QueryRow(ctx, sql,
		ref.Provider, ref.ProviderID, ref.Name, ref.Address, ref.Lat, ref.Lng,
	))
	if err != nil {
		return domain.Restaurant{}, perrs.FromPostgres(err, "restaurants insert")
	}
	return out, nil
}

// GetByID loads one restaurant by primary key
func (r *queries) GetByID(ctx context.Context, id string) (domain.Restaurant, error) {
	const sql = `
		SELECT ` + restaurantCols + `
		FROM restaurants
		WHERE id = $1
	`
	out, err := scanRestaurant(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		return domain.Restaurant{}, perrs.FromPostgres(err, "restaurants get_by_id")
	}
	return out, nil
}

// ListWithReviewCounts returns every restaurant with its review volume
func (r *queries) ListWithReviewCounts(ctx context.Context) ([]domain.TrendingRow, error) {
	const sql = `
		SELECT
			r.id, r.name, COALESCE(r.address, ''), r.lat, r.lng,
			COALESCE(r.photo_url, ''), r.categories, r.price_tier,
			COUNT(v.id) AS review_count
		FROM restaurants r
		LEFT JOIN reviews v ON v.restaurant_id = r.id
		GROUP BY r.id
		ORDER BY review_count DESC, r.created_at DESC
	`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perrs.FromPostgres(err, "restaurants trending")
	}
	defer rows.Close()

	out := make([]domain.TrendingRow, 0, 32)
	for rows.Next() {
		var t domain.TrendingRow
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Address, &t.Lat, &t.Lng,
			&t.PhotoURL, &t.Categories, &t.PriceTier, &t.ReviewCount,
		); err != nil {
			return nil, perrs.FromPostgres(err, "restaurants trending scan")
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, perrs.FromPostgres(err, "restaurants trending rows")
	}
	return out, nil
}

// ReviewsFor lists reviews for one restaurant, newest first
func (r *queries) ReviewsFor(ctx context.Context, restaurantID string) ([]domain.ReviewRow, error) {
	const sql = `
		SELECT
			v.id, v.user_id, COALESCE(p.username, ''), COALESCE(p.avatar_url, ''),
			r.id, r.name, COALESCE(r.address, ''),
			v.rating, COALESCE(v.text, ''), v.photo_urls, v.dishes, v.created_at
		FROM reviews v
		JOIN restaurants r ON r.id = v.restaurant_id
		LEFT JOIN profiles p ON p.id = v.user_id
		WHERE v.restaurant_id = $1
		ORDER BY v.created_at DESC, v.id DESC
	`
	rows, err := r.q.Query(ctx, sql, restaurantID)
	if err != nil {
		return nil, perrs.FromPostgres(err, "restaurants reviews_for")
	}
	defer rows.Close()

	out := make([]domain.ReviewRow, 0, 16)
	for rows.Next() {
		var (
			row       domain.ReviewRow
			createdAt time.Time
		)
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.UserName, &row.UserAvatar,
			&row.RestaurantID, &row.RestaurantName, &row.RestaurantAddress,
			&row.Rating, &row.Text, &row.PhotoURLs, &row.Items, &createdAt,
		); err != nil {
			return nil, perrs.FromPostgres(err, "restaurants reviews_for scan")
		}
		row.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		if row.PhotoURLs == nil {
			row.PhotoURLs = []string{}
		}
		if row.Items == nil {
			row.Items = []string{}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perrs.FromPostgres(err, "restaurants reviews_for rows")
	}
	return out, nil
}
