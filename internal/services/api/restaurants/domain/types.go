// Package domain holds restaurant core types independent of transport or storage
package domain

import "time"

// Restaurant is one canonical restaurant identity
// exactly one row exists per (provider, provider_id) pair
type Restaurant struct {
	ID         string
	Provider   string
	ProviderID string
	Name       string
	Address    string
	Lat        *float64
	Lng        *float64
	PhotoURL   string
	Categories []string
	PriceTier  *int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Ref is the external descriptor a client submits when referencing a place
type Ref struct {
	Provider   string   `json:"provider" validate:"required,min=1,max=64" example:"google"`
	ProviderID string   `json:"providerId" validate:"required,min=1,max=256" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Name       string   `json:"name" example:"Joe's Pizza"`
	Address    string   `json:"address,omitempty" example:"7 Carmine St, New York, NY"`
	Lat        *float64 `json:"lat,omitempty" example:"40.730599"`
	Lng        *float64 `json:"lng,omitempty" example:"-74.002791"`
}
