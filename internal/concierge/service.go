// Package concierge orchestrates a conversational turn: it assembles the
// model input, invokes the generative model, extracts structured directives
// from the reply, and merges in geocoded location data.
package concierge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/travelpal/travelpal/internal/dataset"
	"github.com/travelpal/travelpal/internal/geo"
	"github.com/travelpal/travelpal/internal/metrics"
	"github.com/travelpal/travelpal/internal/models"
)

// ErrEmptyMessage indicates the turn carried no usable message text.
var ErrEmptyMessage = errors.New("valid message string is required")

// Chatter generates a reply for an assembled turn sequence.
type Chatter interface {
	Chat(ctx context.Context, turns []models.Turn) (string, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geo.Coordinates, error)
}

// HotelFinder finds hotels around a coordinate.
type HotelFinder interface {
	NearbyHotels(ctx context.Context, lat, lng float64, radiusM int) ([]models.Booking, error)
}

// Result is the outcome of a conversational turn. Locations only ever
// contain coordinate-bearing entries.
type Result struct {
	Reply       string              `json:"reply"`
	Locations   []models.Location   `json:"locations"`
	Bookings    []models.Booking    `json:"bookings,omitempty"`
	Attractions []models.Attraction `json:"attractions,omitempty"`
}

// Service is the conversational turn orchestrator. It holds no per-user
// state: history and preferences arrive with every call.
type Service struct {
	chatter Chatter
	geo     Geocoder
	hotels  HotelFinder
	data    *dataset.Dataset
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewService creates an orchestrator. metrics may be nil.
func NewService(chatter Chatter, geocoder Geocoder, hotels HotelFinder, data *dataset.Dataset, collector *metrics.Collector, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		chatter: chatter,
		geo:     geocoder,
		hotels:  hotels,
		data:    data,
		metrics: collector,
		logger:  logger,
	}
}

// Converse runs one conversational turn. The prior turns and preferences
// are caller-supplied; nothing is retained between calls.
func (s *Service) Converse(ctx context.Context, message string, history []models.Turn, prefs models.Preferences) (*Result, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	turns := assembleTurns(message, history, prefs)

	start := time.Now()
	raw, err := s.chatter.Chat(ctx, turns)
	s.record(metrics.OpLLMGenerate, start, err)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	visible, extracted, parseErr := extractLocationBlock(raw)
	if parseErr != nil {
		// Never fail the turn over a malformed embedding.
		s.logger.Warn("failed to parse location block", "error", parseErr)
	}

	locations := s.geocodeAll(ctx, extracted)

	result := &Result{Reply: visible, Locations: locations}

	visible, directive := extractBookingDirective(visible)
	if directive != nil {
		s.applyBookingDirective(ctx, result, visible, directive)
		visible = result.Reply
	} else {
		result.Reply = visible
	}

	visible, place := extractAttractionDirective(visible)
	result.Reply = visible
	if place != "" {
		if attractions := s.data.AttractionsFor(place); len(attractions) > 0 {
			result.Attractions = attractions
			result.Reply = fmt.Sprintf("%s has some amazing attractions! Here are the top recommendations for you:", place)
		}
	}

	return result, nil
}

// assembleTurns builds the model input: the persona instruction first, then
// the well-formed prior turns, then the live message. Leading non-user
// turns are dropped because chat models reject histories opening on the
// assistant role.
func assembleTurns(message string, history []models.Turn, prefs models.Preferences) []models.Turn {
	filtered := make([]models.Turn, 0, len(history))
	for _, t := range history {
		if t.Valid() {
			filtered = append(filtered, t)
		}
	}

	for len(filtered) > 0 && filtered[0].Role != models.RoleUser {
		filtered = filtered[1:]
	}

	turns := make([]models.Turn, 0, len(filtered)+2)
	turns = append(turns, models.Turn{Role: models.RoleUser, Content: personaPrompt(prefs)})
	turns = append(turns, filtered...)
	turns = append(turns, models.Turn{Role: models.RoleUser, Content: message})
	return turns
}

// geocodeAll resolves coordinates for the extracted locations concurrently.
// Output order matches input order; entries that fail to geocode are
// dropped, and duplicates (by name, case-insensitive) are removed.
func (s *Service) geocodeAll(ctx context.Context, extracted []extractedLocation) []models.Location {
	if len(extracted) == 0 {
		return nil
	}

	resolved := make([]*models.Location, len(extracted))
	var wg sync.WaitGroup
	for i, loc := range extracted {
		wg.Add(1)
		go func(i int, loc extractedLocation) {
			defer wg.Done()

			start := time.Now()
			coords, err := s.geo.Geocode(ctx, loc.Name)
			s.record(metrics.OpGeocode, start, err)
			if err != nil {
				s.logger.Warn("geocoding failed, dropping location", "name", loc.Name, "error", err)
				return
			}

			locType := loc.Type
			if locType == "" {
				locType = models.LocationRecommendation
			}
			resolved[i] = &models.Location{
				Name:        loc.Name,
				Lat:         coords.Lat,
				Lng:         coords.Lng,
				Description: loc.Description,
				Type:        locType,
			}
		}(i, loc)
	}
	wg.Wait()

	seen := make(map[string]bool, len(extracted))
	locations := make([]models.Location, 0, len(extracted))
	for _, loc := range resolved {
		if loc == nil {
			continue
		}
		key := strings.ToLower(loc.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		locations = append(locations, *loc)
	}
	return locations
}

// applyBookingDirective fetches bookable options for a directive: hotels
// via the points-of-interest client (dataset fallback), flights and trains
// via the dataset. The marker has already been stripped from visible; a
// lead-in sentence is substituted when nothing else remains.
func (s *Service) applyBookingDirective(ctx context.Context, result *Result, visible string, directive *bookingDirective) {
	var bookings []models.Booking

	switch directive.Type {
	case models.BookingHotel:
		bookings = s.lookupHotels(ctx, directive.Location)
	case models.BookingFlight, models.BookingTrain:
		bookings = s.data.SearchBookings(directive.Type, directive.Location)
	default:
		s.logger.Warn("unknown booking type in directive", "type", directive.Type)
		result.Reply = visible
		return
	}

	result.Bookings = bookings
	for _, b := range bookings {
		if b.Lat == 0 && b.Lng == 0 {
			continue
		}
		result.Locations = append(result.Locations, models.Location{
			Name:        b.Name,
			Lat:         b.Lat,
			Lng:         b.Lng,
			Description: b.Description,
			Type:        models.LocationBooking,
		})
	}

	result.Reply = visible
	if visible == "" {
		result.Reply = bookingLeadIn(directive)
	}
}

// lookupHotels geocodes the place and queries the points-of-interest
// service around it, falling back to the bundled dataset when the service
// fails or finds nothing.
func (s *Service) lookupHotels(ctx context.Context, place string) []models.Booking {
	start := time.Now()
	coords, err := s.geo.Geocode(ctx, place)
	s.record(metrics.OpGeocode, start, err)
	if err != nil {
		s.logger.Warn("geocoding booking place failed, using dataset", "place", place, "error", err)
		return s.data.SearchBookings(models.BookingHotel, place)
	}

	start = time.Now()
	hotels, err := s.hotels.NearbyHotels(ctx, coords.Lat, coords.Lng, geo.DefaultHotelRadius)
	s.record(metrics.OpPOISearch, start, err)
	if err != nil {
		s.logger.Warn("hotel lookup failed, using dataset", "place", place, "error", err)
		return s.data.SearchBookings(models.BookingHotel, place)
	}
	if len(hotels) == 0 {
		return s.data.SearchBookings(models.BookingHotel, place)
	}
	return hotels
}

func bookingLeadIn(directive *bookingDirective) string {
	switch directive.Type {
	case models.BookingHotel:
		return fmt.Sprintf("Here are the best hotels in %s:", directive.Location)
	case models.BookingFlight:
		return fmt.Sprintf("Here are the best flights to %s:", directive.Location)
	default:
		return fmt.Sprintf("Here are the best trains to %s:", directive.Location)
	}
}

func (s *Service) record(op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordTiming(op, time.Since(start), err != nil)
}
