// Package domain holds review core types independent of transport or storage
package domain

import "time"

// Review is the raw stored review row
type Review struct {
	ID           string
	UserID       string
	RestaurantID string
	Rating       int
	Text         string
	PhotoURLs    []string
	Dishes       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RatingMin and RatingMax bound the accepted star rating
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidRating reports whether n is an accepted star rating
func ValidRating(n int) bool { return n >= RatingMin && n <= RatingMax }
