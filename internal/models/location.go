package models

// Location marker kinds used by the map renderer.
const (
	LocationRecommendation = "recommendation"
	LocationBooking        = "booking"
)

// Location is a renderable map point. Entries without coordinates are not
// renderable and must never reach a client.
type Location struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
}

// Booking is a bookable option: a hotel from the points-of-interest lookup
// or a flight/train from the bundled dataset. Never persisted.
type Booking struct {
	ID          string   `json:"id" yaml:"id"`
	Type        string   `json:"type" yaml:"type"`
	Name        string   `json:"name" yaml:"name"`
	Location    string   `json:"location" yaml:"location"`
	Price       int      `json:"price" yaml:"price"`
	Rating      float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
	Amenities   []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	Time        string   `json:"time,omitempty" yaml:"time,omitempty"`
	Class       string   `json:"class,omitempty" yaml:"class,omitempty"`
	Lat         float64  `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lng         float64  `json:"lng,omitempty" yaml:"lng,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Booking types.
const (
	BookingHotel  = "hotel"
	BookingFlight = "flight"
	BookingTrain  = "train"
)

// Attraction is a sightseeing suggestion from the bundled dataset.
type Attraction struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Rating      float64 `json:"rating" yaml:"rating"`
	MapLink     string  `json:"mapLink" yaml:"mapLink"`
}
