package domain

// TrendingRow is one restaurant in the trending list with its review volume
type TrendingRow struct {
	ID          string   `json:"id" example:"7b41cdd1-5e0a-4f3e-9c37-0a4f1a2b3c4d"`
	Name        string   `json:"name" example:"Joe's Pizza"`
	Address     string   `json:"address,omitempty" example:"7 Carmine St, New York, NY"`
	Lat         *float64 `json:"lat,omitempty" example:"40.730599"`
	Lng         *float64 `json:"lng,omitempty" example:"-74.002791"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	PriceTier   *int     `json:"priceTier,omitempty" example:"2"`
	ReviewCount int64    `json:"reviewCount" example:"12"`
}

// ReviewRow is the review shape embedded in a restaurant detail page
type ReviewRow struct {
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

// Detail is a restaurant with its reviews attached, newest first
type Detail struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	Lat         *float64    `json:"lat,omitempty"`
	Lng         *float64    `json:"lng,omitempty"`
	PhotoURL    string      `json:"photoUrl,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	PriceTier   *int        `json:"priceTier,omitempty"`
	ReviewCount int         `json:"reviewCount"`
	Reviews     []ReviewRow `json:"reviews"`
}
