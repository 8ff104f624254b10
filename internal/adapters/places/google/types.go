package google

// Place is one result row from the text search endpoint
type Place struct {
	Provider   string   `json:"provider"`
	ProviderID string   `json:"providerId"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	PhotoRef   string   `json:"photoRef,omitempty"`
	PriceLevel *int     `json:"priceLevel,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

// textSearchResponse mirrors the Places API text search payload
type textSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Results      []textSearchResult `json:"results"`
}

type textSearchResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	PriceLevel       *int     `json:"price_level"`
	Rating           *float64 `json:"rating"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}
