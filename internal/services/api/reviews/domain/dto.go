package domain

// CreateInput is the POST /reviews body.
// The place fields are resolved into a canonical restaurant before the
// review row is written, so a client never supplies a restaurant id
type CreateInput struct {
	Provider   string   `json:"provider" example:"google"`
	ProviderID string   `json:"providerId" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Name       string   `json:"name" example:"Joe's Pizza"`
	Address    string   `json:"address,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Rating     int      `json:"rating" example:"4"`
	Text       string   `json:"text,omitempty" example:"Great crust, long line"`
	Dishes     []string `json:"dishes,omitempty"`
	PhotoURLs  []string `json:"photoUrls,omitempty"`
}

// UpdateInput is the PATCH /reviews/{id} body
// absent fields keep their stored value, explicit nulls clear
type UpdateInput struct {
	Rating    Opt[int]      `json:"rating"`
	Text      Opt[string]   `json:"text"`
	Dishes    Opt[[]string] `json:"dishes"`
	PhotoURLs Opt[[]string] `json:"photoUrls"`
}

// Response is the wire shape for a single review
type Response struct {
	ID                string   `json:"id"`
	UserID            string   `json:"userId"`
	UserName          string   `json:"userName,omitempty"`
	UserAvatar        string   `json:"userAvatar,omitempty"`
	RestaurantID      string   `json:"restaurantId"`
	RestaurantName    string   `json:"restaurantName"`
	RestaurantAddress string   `json:"restaurantAddress,omitempty"`
	Rating            int      `json:"rating"`
	Text              string   `json:"text,omitempty"`
	PhotoURLs         []string `json:"photoUrls"`
	Items             []string `json:"items"`
	CreatedAt         string   `json:"createdAt"`
}
