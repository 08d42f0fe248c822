package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelpal/travelpal/internal/concierge"
	"github.com/travelpal/travelpal/internal/models"
)

func sampleResult() *concierge.Result {
	return &concierge.Result{
		Reply: "Here are the best hotels in Jaipur:",
		Locations: []models.Location{
			{Name: "Rambagh Palace", Lat: 26.8994, Lng: 75.8089, Description: "Former royal residence", Type: models.LocationBooking},
		},
		Bookings: []models.Booking{
			{ID: "7", Type: models.BookingHotel, Name: "Rambagh Palace", Location: "Jaipur", Price: 4500},
		},
		Attractions: []models.Attraction{
			{Name: "Amber Fort", Rating: 4.7, Description: "Hilltop fort with mirror palace"},
		},
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, sampleResult(), false)

	assert.Contains(t, out.String(), "Here are the best hotels in Jaipur:")
	assert.Contains(t, out.String(), "- Rambagh Palace")
	assert.Contains(t, out.String(), "- [hotel] Rambagh Palace")
	assert.Contains(t, out.String(), "- Amber Fort")
	// Detail lines are verbose-only.
	assert.NotContains(t, out.String(), "26.8994")
	assert.NotContains(t, out.String(), "4500")
	assert.NotContains(t, out.String(), "mirror palace")
}

func TestPrintResultVerbose(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, sampleResult(), true)

	assert.Contains(t, out.String(), "(26.8994, 75.8089)")
	assert.Contains(t, out.String(), "Former royal residence")
	assert.Contains(t, out.String(), "₹4500")
	assert.Contains(t, out.String(), "(4.7): Hilltop fort with mirror palace")
}
