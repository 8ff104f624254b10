// Package domain holds feed contracts
package domain

import (
	"context"

	reviewdomain "foodreview/internal/services/api/reviews/domain"
)

// Entry is one feed item, identical in shape to a review view
type Entry = reviewdomain.Response

// MaxEntries caps the personal feed, there is no pagination
const MaxEntries = 50

// ServicePort is the interface implemented by the feed service
type ServicePort interface {
	// PersonalFeed returns recent reviews from the viewer's follow set plus
	// the viewer's own, newest first, at most MaxEntries
	PersonalFeed(ctx context.Context, viewerID string) ([]Entry, error)
}
