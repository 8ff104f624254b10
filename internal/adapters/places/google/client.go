// Package google provides a Google Places text search client
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	perr "foodreview/internal/platform/errors"
	"foodreview/internal/platform/logger"
)

// ErrAPIStatus marks a search that reached the provider but came back with an
// error status (REQUEST_DENIED, OVER_QUERY_LIMIT, ...) rather than failing in
// transport. Callers match it with errors.Is to degrade instead of failing
var ErrAPIStatus = errors.New("places api error status")

const (
	// ProviderName is the provider slug stamped on every result
	ProviderName = "google"

	baseURLDefault = "https://maps.googleapis.com/maps/api"
	defaultTimeout = 10 * time.Second

	// searchRadiusMeters biases results to roughly a 25 mile circle
	searchRadiusMeters = 40000
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the Places REST API
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("places"),
	}
}

// SearchRestaurants runs a text search biased around lat and lng.
// The word restaurant is appended to the query to improve result quality
func (c *Client) SearchRestaurants(ctx context.Context, query string, lat, lng float64) ([]Place, error) {
	q := url.Values{}
	q.Set("query", query+" restaurant")
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", searchRadiusMeters))
	q.Set("type", "restaurant")
	q.Set("key", c.opts.APIKey)

	u := c.opts.BaseURL + "/place/textsearch/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "places new request failed")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "places request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("places http %d", resp.StatusCode)
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "places decode failed")
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []Place{}, nil
	default:
		c.log.Error().Str("status", body.Status).Str("error_message", body.ErrorMessage).Msg("places api error")
		return nil, perr.Wrapf(ErrAPIStatus, perr.ErrorCodeUnavailable, "places status %s", body.Status)
	}

	out := make([]Place, 0, len(body.Results))
	for _, r := range body.Results {
		p := Place{
			Provider:   ProviderName,
			ProviderID: r.PlaceID,
			Name:       r.Name,
			Address:    r.FormattedAddress,
			Lat:        r.Geometry.Location.Lat,
			Lng:        r.Geometry.Location.Lng,
			PriceLevel: r.PriceLevel,
			Rating:     r.Rating,
		}
		if len(r.Photos) > 0 {
			p.PhotoRef = r.Photos[0].PhotoReference
		}
		out = append(out, p)
	}
	c.log.Debug().Int("results", len(out)).Str("query", query).Msg("places search")
	return out, nil
}
