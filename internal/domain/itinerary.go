package domain

// ParkTag identifies a specific theme park. The zero value means the day is
// not a theme-park day.
type ParkTag string

const (
	ParkAnimalKingdom    ParkTag = "animal-kingdom"
	ParkMagicKingdom     ParkTag = "magic-kingdom"
	ParkHollywoodStudios ParkTag = "hollywood-studios"
	ParkEpcot            ParkTag = "epcot"
)

// HighlightType classifies a single itinerary entry.
type HighlightType string

const (
	HighlightDining   HighlightType = "dining"
	HighlightRide     HighlightType = "ride"
	HighlightShow     HighlightType = "show"
	HighlightSpecial  HighlightType = "special"
	HighlightResort   HighlightType = "resort"
	HighlightExplore  HighlightType = "explore"
	HighlightActivity HighlightType = "activity"
	HighlightEvent    HighlightType = "event"
)

// Highlight is one scheduled happening within a day. Time is a display
// string: either a clock time with an AM/PM suffix or a named period such
// as "Rope Drop" or "Evening".
type Highlight struct {
	Time        string        `json:"time"`
	Description string        `json:"description"`
	Type        HighlightType `json:"type"`
}

// DayRecord is one calendar day of the trip. Highlights keep the narrative
// order of the source text, which is not necessarily time-sorted.
type DayRecord struct {
	Label      string      `json:"label"`
	DateKey    string      `json:"date_key"`
	Title      string      `json:"title"`
	Icon       string      `json:"icon"`
	Park       ParkTag     `json:"park,omitempty"`
	Hours      string      `json:"hours,omitempty"`
	Highlights []Highlight `json:"highlights"`
}
