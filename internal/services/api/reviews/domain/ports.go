package domain

import "context"

// ServicePort is the interface implemented by the reviews service
type ServicePort interface {
	Create(ctx context.Context, authorID string, in CreateInput) (Response, error)
	Update(ctx context.Context, authorID, reviewID string, in UpdateInput) (Response, error)
	Get(ctx context.Context, reviewID string) (Response, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Response, error)
}
