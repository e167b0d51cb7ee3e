package itinerary

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripplanner/internal/domain"
)

var (
	// dayHeaderRe matches lines such as "Saturday | December 6" or
	// "DECEMBER 6": optional weekday, optional separator, month name, day
	// number. Only the day number is captured.
	dayHeaderRe = regexp.MustCompile(`(?i)(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)?\s*\|?\s*(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})`)

	// hoursRangeRe matches an operating-hours range like "8:00 AM - 6:00 PM"
	// or "9:00-10:00".
	hoursRangeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(?:AM|PM)?\s*[-–]\s*(\d{1,2}:\d{2})\s*(?:AM|PM)?`)

	// timedLineRe detects a time followed by descriptive text, used to keep
	// an event line like "3:00 PM Resort Check-in" from being read as hours.
	timedLineRe = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s+(?:AM|PM)?\s+\w`)

	// eventRe captures a time-prefixed event line: clock time, optional
	// AM/PM, then the description.
	eventRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(?:AM|PM)?\s+(.+)`)

	// trailingTimeRe guards against reading the tail of an hours range
	// ("- 6:00 PM") as an event description.
	trailingTimeRe = regexp.MustCompile(`^[-–]?\s*\d{1,2}:\d{2}`)
)

// Parse scans raw itinerary text line by line and populates the day
// skeleton for the given inclusive date range. Day-header lines move a
// cursor; every other recognized line annotates the day the cursor points
// at. Unrecognized or malformed lines are skipped silently: any input,
// including empty, produces a valid itinerary.
//
// Day headers are matched by day-of-month only. On a trip that crosses a
// month boundary a header can therefore attach to the wrong month's day;
// month-aware matching would be needed before such trips are supported.
func Parse(text, startDate, endDate string) []domain.DayRecord {
	days := BuildSkeleton(startDate, endDate)

	currentDay := -1
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if m := dayHeaderRe.FindStringSubmatch(line); m != nil {
			dayNum, _ := strconv.Atoi(m[1])
			// A day number outside the trip's range leaves the cursor
			// where it was.
			if idx := findDayOfMonth(days, dayNum); idx >= 0 {
				currentDay = idx
			}
			continue
		}
		if currentDay < 0 || currentDay >= len(days) {
			continue
		}
		day := &days[currentDay]

		for _, rule := range titleRules {
			if strings.Contains(lower, rule.keyword) {
				day.Title = rule.title
				day.Icon = rule.icon
				day.Park = rule.park
				break
			}
		}

		if m := hoursRangeRe.FindStringSubmatch(line); m != nil && !timedLineRe.MatchString(line) {
			day.Hours = m[1] + " - " + m[2]
		}

		if m := eventRe.FindStringSubmatch(line); m != nil {
			description := strings.TrimSpace(strings.ReplaceAll(m[2], "*", ""))
			if trailingTimeRe.MatchString(description) {
				// The "description" is the second half of an hours range.
				continue
			}
			day.Highlights = append(day.Highlights, domain.Highlight{
				Time:        formatClock(m[1], lower),
				Description: description,
				Type:        classifyHighlight(description),
			})
		}
	}

	applyDefaults(days)
	return days
}

// findDayOfMonth returns the index of the skeleton day whose date has the
// given day-of-month, or -1 if none matches.
func findDayOfMonth(days []domain.DayRecord, dayNum int) int {
	for i, d := range days {
		t, err := time.Parse(dateKeyLayout, d.DateKey)
		if err != nil {
			continue
		}
		if t.Day() == dayNum {
			return i
		}
	}
	return -1
}

// formatClock appends an AM/PM suffix when the line does not carry one.
// Heuristic, not a guarantee: an explicit marker anywhere in the line wins;
// otherwise hours 1-6 read as afternoon and 7 upward as morning.
func formatClock(clock, lowerLine string) string {
	hour, err := strconv.Atoi(strings.SplitN(clock, ":", 2)[0])
	if err != nil {
		return clock
	}
	switch {
	case strings.Contains(lowerLine, "pm") || (hour >= 1 && hour < 7):
		return clock + " PM"
	case strings.Contains(lowerLine, "am") || hour >= 7:
		return clock + " AM"
	}
	return clock
}
