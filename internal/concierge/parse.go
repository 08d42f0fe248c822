package concierge

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Directive and structured-block patterns. These mirror the contract stated
// in the persona instruction; anything that doesn't match is left in the
// visible text untouched.
var (
	fencedBlockRe      = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	bookingTypeRe      = regexp.MustCompile(`\[SHOW_BOOKINGS\s+type=([^\s\]]+)`)
	bookingLocationRe  = regexp.MustCompile(`location=([^\s\]]+)`)
	bookingMarkerRe    = regexp.MustCompile(`\[SHOW_BOOKINGS[^\]]*\]`)
	attractionRe       = regexp.MustCompile(`\[SHOW_ATTRACTIONS\s+location=([^\]]+)\]`)
	attractionMarkerRe = regexp.MustCompile(`\[SHOW_ATTRACTIONS[^\]]*\]`)
)

// extractedLocation is one record of the fenced JSON block.
type extractedLocation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// extractLocationBlock finds and parses the fenced JSON location block.
// Returns the visible text with the block removed and the parsed records.
// A malformed block is reported as an error with the text left untouched:
// a broken embedding must never fail the whole turn.
func extractLocationBlock(text string) (string, []extractedLocation, error) {
	match := fencedBlockRe.FindStringSubmatch(text)
	if match == nil {
		return text, nil, nil
	}

	var locations []extractedLocation
	if err := json.Unmarshal([]byte(match[1]), &locations); err != nil {
		return text, nil, fmt.Errorf("parse location block: %w", err)
	}

	stripped := strings.TrimSpace(strings.Replace(text, match[0], "", 1))
	return stripped, locations, nil
}

// bookingDirective is a parsed [SHOW_BOOKINGS ...] marker.
type bookingDirective struct {
	Type     string
	Location string
}

// extractBookingDirective scans for a booking marker. Returns the visible
// text with all booking markers removed and the parsed directive, or nil
// when no marker is present. A missing location defaults to "India",
// matching the breadth of the bundled dataset.
func extractBookingDirective(text string) (string, *bookingDirective) {
	typeMatch := bookingTypeRe.FindStringSubmatch(text)
	if typeMatch == nil {
		return text, nil
	}

	directive := &bookingDirective{Type: typeMatch[1], Location: "India"}
	if locMatch := bookingLocationRe.FindStringSubmatch(text); locMatch != nil {
		directive.Location = locMatch[1]
	}

	stripped := strings.TrimSpace(bookingMarkerRe.ReplaceAllString(text, ""))
	return stripped, directive
}

// extractAttractionDirective scans for an attraction marker. Returns the
// visible text with all attraction markers removed and the requested place,
// or "" when no marker is present.
func extractAttractionDirective(text string) (string, string) {
	match := attractionRe.FindStringSubmatch(text)
	if match == nil {
		return text, ""
	}

	place := strings.TrimSpace(match[1])
	stripped := strings.TrimSpace(attractionMarkerRe.ReplaceAllString(text, ""))
	return stripped, place
}
