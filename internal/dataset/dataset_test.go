package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelpal/travelpal/internal/models"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, d.Hotels)
	assert.NotEmpty(t, d.Flights)
	assert.NotEmpty(t, d.Trains)
	assert.NotEmpty(t, d.Attractions)
}

func TestSearchBookings(t *testing.T) {
	d := MustLoad()

	tests := []struct {
		name        string
		bookingType string
		place       string
		wantNames   []string
	}{
		{"hotel by city", models.BookingHotel, "goa", []string{"Sea Breeze Resort"}},
		{"hotel case insensitive", models.BookingHotel, "MUMBAI", []string{"City Center Inn"}},
		{"flight by city", models.BookingFlight, "delhi", []string{"IndiGo 6E-234", "Air India AI-131"}},
		{"train by route", models.BookingTrain, "chandigarh", []string{"Shatabdi Express"}},
		{"no match", models.BookingHotel, "paris", nil},
		{"unknown type", "cruise", "goa", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := d.SearchBookings(tt.bookingType, tt.place)
			var names []string
			for _, b := range results {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestSearchBookingsEmptyPlaceMatchesAll(t *testing.T) {
	d := MustLoad()
	assert.Len(t, d.SearchBookings(models.BookingHotel, ""), 3)
}

func TestAttractionsFor(t *testing.T) {
	d := MustLoad()

	jaipur := d.AttractionsFor("Jaipur")
	require.Len(t, jaipur, 3)
	assert.Equal(t, "Amber Fort", jaipur[0].Name)

	// Case and whitespace insensitive.
	assert.Len(t, d.AttractionsFor("  "), 0)
	assert.Len(t, d.AttractionsFor("GOA"), 2)
	assert.Empty(t, d.AttractionsFor("Nowhereville"))
}
