package itinerary

import (
	"strings"

	"tripplanner/internal/domain"
)

// titleRule rewrites a day's title, icon, and park tag when its keyword
// appears anywhere in a line. Rules are evaluated in table order and the
// first hit wins for that line; a keyword on a later line of the same day
// block overwrites again.
type titleRule struct {
	keyword string
	title   string
	icon    string
	park    domain.ParkTag
}

var titleRules = []titleRule{
	{"animal kingdom", "Animal Kingdom", "🦁", domain.ParkAnimalKingdom},
	{"magic kingdom", "Magic Kingdom", "🏰", domain.ParkMagicKingdom},
	{"hollywood studios", "Hollywood Studios", "🎬", domain.ParkHollywoodStudios},
	{"epcot", "EPCOT", "🌍", domain.ParkEpcot},
	{"disney springs", "Disney Springs", "🛍️", ""},
	{"arrival", arrivalTitle, arrivalIcon, ""},
	{"departure", departureTitle, departureIcon, ""},
	{"rest day", "Rest Day", "😴", ""},
	{"christmas party", "Christmas Party", "🎄", domain.ParkMagicKingdom},
	{"very merry", "Christmas Party", "🎄", domain.ParkMagicKingdom},
}

// Keyword fragments for classifying a highlight from its description.
// The dining list mixes meal words with known restaurant-name fragments.
var (
	resortKeywords = []string{"check-in", "checkout", "check-out"}
	diningKeywords = []string{
		"breakfast", "lunch", "dinner", "cafe", "restaurant", "house",
		"cantina", "steakhouse", "banquet", "prime time", "park fare",
		"tony's", "oga's", "rix", "akershus",
	}
	showKeywords    = []string{"fireworks", "parade", "fantasmic", "luminous", "happily ever"}
	specialKeywords = []string{"party", "surprise"}
)

// classifyHighlight picks a highlight type by substring search, checked in
// precedence order: resort, dining, show, special, then the generic event.
func classifyHighlight(description string) domain.HighlightType {
	lower := strings.ToLower(description)
	switch {
	case containsAny(lower, resortKeywords):
		return domain.HighlightResort
	case containsAny(lower, diningKeywords):
		return domain.HighlightDining
	case containsAny(lower, showKeywords):
		return domain.HighlightShow
	case containsAny(lower, specialKeywords):
		return domain.HighlightSpecial
	}
	return domain.HighlightEvent
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
