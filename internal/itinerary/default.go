package itinerary

import "tripplanner/internal/domain"

// BuildDefault returns the itinerary used when no text was pasted: the
// plain skeleton with the first day marked as arrival and the last as
// departure, filled in with the standard placeholder highlights.
func BuildDefault(startDate, endDate string) []domain.DayRecord {
	days := BuildSkeleton(startDate, endDate)
	if len(days) == 0 {
		return days
	}

	days[0].Title = arrivalTitle
	days[0].Icon = arrivalIcon
	if len(days) > 1 {
		last := &days[len(days)-1]
		last.Title = departureTitle
		last.Icon = departureIcon
	}

	applyDefaults(days)
	return days
}

// applyDefaults gives every day that ended up with no highlights a
// placeholder entry. Arrival days get an afternoon check-in, departure days
// a morning check-out, park days an all-day activity. Days that are none of
// those stay empty and render as unplanned.
func applyDefaults(days []domain.DayRecord) {
	for i := range days {
		day := &days[i]
		if len(day.Highlights) > 0 {
			continue
		}
		switch {
		case day.Title == arrivalTitle:
			day.Highlights = append(day.Highlights, domain.Highlight{
				Time:        "Afternoon",
				Description: "Resort Check-in",
				Type:        domain.HighlightResort,
			})
		case day.Title == departureTitle:
			day.Highlights = append(day.Highlights, domain.Highlight{
				Time:        "Morning",
				Description: "Check-out",
				Type:        domain.HighlightResort,
			})
		case day.Park != "":
			day.Highlights = append(day.Highlights, domain.Highlight{
				Time:        "All Day",
				Description: "Enjoy " + day.Title + "!",
				Type:        domain.HighlightActivity,
			})
		}
	}
}
