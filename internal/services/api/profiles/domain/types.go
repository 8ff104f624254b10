// Package domain holds profile core types independent of transport or storage
package domain

import "time"

// Profile is one stored user profile row
// the id comes from the auth provider, rows are created lazily
type Profile struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	Bio         string
	CreatedAt   time.Time
}
