// Package geo wraps the Nominatim geocoding and Overpass points-of-interest
// services. Both are treated as unreliable: failures and empty results
// degrade to zero results rather than aborting the caller's turn.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// userAgent identifies the app to Nominatim, which rejects anonymous clients.
const userAgent = "TravelPal-App"

// ErrNoResults indicates the service returned zero matches for the query.
var ErrNoResults = errors.New("no results")

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// NominatimClient resolves free-text place names to coordinates.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient creates a geocoding client. timeout bounds every
// request; pass 0 for the 10s default.
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place name to the coordinates of its first match.
// Returns ErrNoResults if the service has no match.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (Coordinates, error) {
	u := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode %q: unexpected status %d", query, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", query, ErrNoResults)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return Coordinates{Lat: lat, Lng: lng}, nil
}
