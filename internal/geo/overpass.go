package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/travelpal/travelpal/internal/models"
)

// DefaultHotelRadius is the search radius in meters around a coordinate.
const DefaultHotelRadius = 5000

// OverpassClient finds tagged points of interest around a coordinate.
type OverpassClient struct {
	endpoint string
	client   *http.Client
}

// NewOverpassClient creates a points-of-interest client. timeout bounds
// every request; pass 0 for the 10s default. Overpass queries can be slow,
// so callers may want a larger value than for geocoding.
func NewOverpassClient(endpoint string, timeout time.Duration) *OverpassClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &OverpassClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// NearbyHotels returns hotels tagged around the given coordinate, nearest
// metadata first (named entries before unnamed, then by id for stable
// output). An empty result is not an error.
func (c *OverpassClient) NearbyHotels(ctx context.Context, lat, lng float64, radiusM int) ([]models.Booking, error) {
	query := fmt.Sprintf(`[out:json][timeout:10];node["tourism"="hotel"](around:%d,%f,%f);out;`, radiusM, lat, lng)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass query: unexpected status %d", resp.StatusCode)
	}

	var result overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	hotels := make([]models.Booking, 0, len(result.Elements))
	for _, el := range result.Elements {
		hotels = append(hotels, elementToBooking(el))
	}

	sort.Slice(hotels, func(i, j int) bool {
		a, b := hotels[i], hotels[j]
		aNamed, bNamed := a.Name != "Unnamed Hotel", b.Name != "Unnamed Hotel"
		if aNamed != bNamed {
			return aNamed
		}
		return a.ID < b.ID
	})

	return hotels, nil
}

// elementToBooking maps an Overpass node to a bookable hotel. OSM carries
// no pricing, so price is a stable estimate derived from the node id;
// rating comes from the stars tag when present.
func elementToBooking(el overpassElement) models.Booking {
	name := el.Tags["name"]
	if name == "" {
		name = "Unnamed Hotel"
	}

	b := models.Booking{
		ID:          strconv.FormatInt(el.ID, 10),
		Type:        models.BookingHotel,
		Name:        name,
		Location:    locationFromTags(el.Tags),
		Price:       1500 + int(el.ID%80)*50,
		Lat:         el.Lat,
		Lng:         el.Lon,
		Amenities:   amenitiesFromTags(el.Tags),
		Description: el.Tags["description"],
	}

	if stars, err := strconv.ParseFloat(el.Tags["stars"], 64); err == nil {
		b.Rating = stars
	}

	return b
}

func locationFromTags(tags map[string]string) string {
	for _, key := range []string{"addr:city", "addr:suburb", "addr:street"} {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return ""
}

// amenityTags maps OSM tags to display amenities.
var amenityTags = map[string]string{
	"internet_access":  "WiFi",
	"swimming_pool":    "Pool",
	"restaurant":       "Restaurant",
	"bar":              "Bar",
	"parking":          "Parking",
	"air_conditioning": "Air Conditioning",
}

func amenitiesFromTags(tags map[string]string) []string {
	var amenities []string
	for tag, label := range amenityTags {
		if v, ok := tags[tag]; ok && v != "no" {
			amenities = append(amenities, label)
		}
	}
	sort.Strings(amenities)
	return amenities
}
