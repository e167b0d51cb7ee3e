// Package itinerary turns pasted free-text travel plans into structured
// day-by-day records. Input is assumed to follow common travel-document
// conventions (day headers, time-prefixed event lines, hour ranges); lines
// that match nothing are ignored rather than rejected.
package itinerary

import (
	"time"

	"tripplanner/internal/domain"
)

const dateKeyLayout = "2006-01-02"

const (
	defaultTitle   = "Free Day"
	defaultIcon    = "📅"
	arrivalTitle   = "Arrival Day"
	arrivalIcon    = "✈️"
	departureTitle = "Departure"
	departureIcon  = "👋"
)

// BuildSkeleton returns one empty DayRecord per calendar day from startDate
// to endDate inclusive. Dates are ISO YYYY-MM-DD strings; an inverted range
// or an unparseable date yields an empty slice, never an error.
func BuildSkeleton(startDate, endDate string) []domain.DayRecord {
	start, err := time.Parse(dateKeyLayout, startDate)
	if err != nil {
		return []domain.DayRecord{}
	}
	end, err := time.Parse(dateKeyLayout, endDate)
	if err != nil {
		return []domain.DayRecord{}
	}

	days := []domain.DayRecord{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, domain.DayRecord{
			Label:      d.Format("Monday, Jan 2"),
			DateKey:    d.Format(dateKeyLayout),
			Title:      defaultTitle,
			Icon:       defaultIcon,
			Highlights: []domain.Highlight{},
		})
	}
	return days
}
