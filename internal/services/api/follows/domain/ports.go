package domain

import "context"

// ReaderPort is the read-only view of the follow graph used by other modules
type ReaderPort interface {
	// FollowingOf returns the ids this user follows, empty when the user
	// follows nobody or does not exist
	FollowingOf(ctx context.Context, userID string) ([]string, error)

	// CountsFor returns follower and following totals for a user
	CountsFor(ctx context.Context, userID string) (Counts, error)
}
