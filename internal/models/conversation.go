package models

// Turn roles as sent by clients. The persona instruction and live prompt
// always carry RoleUser; model output carries RoleAssistant.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether a turn is well formed enough to send upstream:
// non-empty text and a known role. Clients occasionally send partial or
// placeholder entries; those are silently skipped.
func (t Turn) Valid() bool {
	if t.Content == "" {
		return false
	}
	return t.Role == RoleUser || t.Role == RoleAssistant
}

// Preferences is the sparse, client-owned preference map embedded into the
// persona instruction. All fields are optional.
type Preferences struct {
	FoodType          string `json:"foodType,omitempty"`
	AccommodationType string `json:"accommodationType,omitempty"`
	Budget            string `json:"budget,omitempty"`
	TravelStyle       string `json:"travelStyle,omitempty"`
	Destination       string `json:"destination,omitempty"`
}
