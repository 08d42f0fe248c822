// Package dataset serves the bundled bookings and attractions data. Flights
// and trains have no live lookup service, so a curated dataset stands in;
// it also acts as the fallback when the hotel points-of-interest lookup
// comes back empty.
package dataset

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/travelpal/travelpal/internal/models"
)

//go:embed bookings.yaml
var bookingsYAML []byte

// Dataset holds the parsed bookings and attractions data.
type Dataset struct {
	Hotels      []models.Booking               `yaml:"hotels"`
	Flights     []models.Booking               `yaml:"flights"`
	Trains      []models.Booking               `yaml:"trains"`
	Attractions map[string][]models.Attraction `yaml:"attractions"`
}

// Load parses the embedded dataset.
func Load() (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(bookingsYAML, &d); err != nil {
		return nil, fmt.Errorf("parse bookings dataset: %w", err)
	}
	return &d, nil
}

// MustLoad parses the embedded dataset, panicking on failure. The data is
// compiled in, so a parse failure is a build defect.
func MustLoad() *Dataset {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// SearchBookings returns options of the given type whose location contains
// the given place, case-insensitively. An empty place matches everything.
func (d *Dataset) SearchBookings(bookingType, place string) []models.Booking {
	var pool []models.Booking
	switch bookingType {
	case models.BookingHotel:
		pool = d.Hotels
	case models.BookingFlight:
		pool = d.Flights
	case models.BookingTrain:
		pool = d.Trains
	default:
		return nil
	}

	place = strings.ToLower(place)
	var matches []models.Booking
	for _, b := range pool {
		if place == "" || strings.Contains(strings.ToLower(b.Location), place) {
			matches = append(matches, b)
		}
	}
	return matches
}

// AttractionsFor returns attractions for a place name, or nil if the place
// is not in the dataset. Lookup is case- and whitespace-insensitive.
func (d *Dataset) AttractionsFor(place string) []models.Attraction {
	key := strings.ReplaceAll(strings.ToLower(place), " ", "")
	return d.Attractions[key]
}
