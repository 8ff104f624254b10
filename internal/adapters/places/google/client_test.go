package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "foodreview/internal/platform/errors"
)

const okBody = `{
	"status": "OK",
	"results": [
		{
			"place_id": "p1",
			"name": "Joe's Pizza",
			"formatted_address": "7 Carmine St",
			"rating": 4.5,
			"price_level": 1,
			"geometry": {"location": {"lat": 40.73, "lng": -74.0}},
			"photos": [{"photo_reference": "ref-1"}, {"photo_reference": "ref-2"}]
		},
		{
			"place_id": "p2",
			"name": "Luigi's",
			"formatted_address": "12 Mott St",
			"geometry": {"location": {"lat": 40.71, "lng": -73.99}}
		}
	]
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	return c, srv.Close
}

func TestSearchRestaurants_MapsResults(t *testing.T) {
	var gotQuery string
	c, stop := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		if r.URL.Path != "/place/textsearch/json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" {
			t.Errorf("key missing")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	})
	defer stop()

	got, err := c.SearchRestaurants(context.Background(), "pizza", 40.73, -74.0)
	if err != nil {
		t.Fatalf("SearchRestaurants: %v", err)
	}
	if gotQuery != "pizza restaurant" {
		t.Fatalf("query = %q, want pizza restaurant", gotQuery)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.Provider != ProviderName || first.ProviderID != "p1" {
		t.Fatalf("first = %+v", first)
	}
	if first.PhotoRef != "ref-1" {
		t.Fatalf("photoRef = %q, want the first photo only", first.PhotoRef)
	}
	if first.Rating == nil || *first.Rating != 4.5 {
		t.Fatalf("rating = %v", first.Rating)
	}
	if first.PriceLevel == nil || *first.PriceLevel != 1 {
		t.Fatalf("priceLevel = %v", first.PriceLevel)
	}

	second := got[1]
	if second.PhotoRef != "" || second.Rating != nil || second.PriceLevel != nil {
		t.Fatalf("optional fields should stay empty: %+v", second)
	}
}

func TestSearchRestaurants_ZeroResults(t *testing.T) {
	c, stop := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})
	defer stop()

	got, err := c.SearchRestaurants(context.Background(), "nothing here", 0, 0)
	if err != nil {
		t.Fatalf("SearchRestaurants: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSearchRestaurants_APIErrorStatus(t *testing.T) {
	c, stop := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	})
	defer stop()

	_, err := c.SearchRestaurants(context.Background(), "pizza", 0, 0)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable, got %v", err)
	}
	if !errors.Is(err, ErrAPIStatus) {
		t.Fatalf("error status must match ErrAPIStatus, got %v", err)
	}
}

func TestSearchRestaurants_HTTPError(t *testing.T) {
	c, stop := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer stop()

	_, err := c.SearchRestaurants(context.Background(), "pizza", 0, 0)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable, got %v", err)
	}
	if errors.Is(err, ErrAPIStatus) {
		t.Fatalf("transport failure must not match ErrAPIStatus")
	}
}
