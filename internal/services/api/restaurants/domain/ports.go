package domain

import "context"

// ResolverPort turns an external place descriptor into a canonical identity
type ResolverPort interface {
	// Resolve returns the existing identity for ref or creates it.
	// Concurrent calls with the same (provider, providerId) converge on one row
	Resolve(ctx context.Context, ref Ref) (Restaurant, error)
}

// ServicePort is the full restaurants module surface
type ServicePort interface {
	ResolverPort

	Trending(ctx context.Context) ([]TrendingRow, error)
	Detail(ctx context.Context, id string) (Detail, error)
}
