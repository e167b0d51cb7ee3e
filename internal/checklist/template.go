// Package checklist generates and amends the planning/packing checklist
// attached to a trip.
package checklist

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"tripplanner/internal/domain"
)

const dateLayout = "2006-01-02"

// TripLengthDays returns the inclusive length of the trip in days, or 0
// when either date fails to parse.
func TripLengthDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DefaultItems builds the starter checklist for a new trip. Item wording is
// tailored to the destination, party size, and trip length; DaysBeforeTrip
// orders the items into a rough pre-trip timeline.
func DefaultItems(destination string, partySize int, startDate, endDate string) []domain.ChecklistItem {
	nights := TripLengthDays(startDate, endDate)

	items := []domain.ChecklistItem{
		newItem("🎟️ Book Park Tickets",
			fmt.Sprintf("Purchase %d-day park tickets for %s", partySize, destination),
			"Planning", 60),
		newItem("🏨 Reserve Hotel",
			fmt.Sprintf("Book accommodations for %d nights near %s", nights, destination),
			"Planning", 45),
		newItem("🍽️ Make Dining Reservations",
			"Book character dining and popular restaurants (reservations open 60 days in advance)",
			"Planning", 60),
	}

	if destination == "Walt Disney World" {
		items = append(items, newItem("⚡ Book Genie+ Lightning Lanes",
			"Set up Disney Genie+ and Individual Lightning Lane selections",
			"Planning", 7))
	}

	items = append(items,
		newItem("✈️ Arrange Transportation",
			"Book flights, rental car, or airport shuttle service",
			"Travel", 30),
		newItem("🎒 Pack Comfortable Shoes",
			fmt.Sprintf("Bring %d pairs of broken-in walking shoes (you'll walk 10+ miles/day!)", partySize),
			"Packing", 3),
		newItem("🧴 Sunscreen & Toiletries",
			"Pack sunscreen, hand sanitizer, medications, and daily essentials",
			"Packing", 3),
		newItem("📱 Download My Disney Experience App",
			"Install app, link tickets, make park reservations, and check wait times",
			"Technology", 7),
		newItem("🔋 Pack Portable Chargers",
			"Bring power banks to keep phones charged for photos and mobile ordering",
			"Packing", 3),
		newItem("💳 Prepare MagicBands or Park Tickets",
			"Set up MagicBands (WDW) or have park tickets ready on phone",
			"Technology", 7),
		newItem("☂️ Pack Rain Gear",
			"Bring ponchos or light rain jackets (Florida afternoon showers are common)",
			"Packing", 3),
	)

	if partySize > 2 {
		items = append(items, newItem("🚸 Prepare Child Safety Plan",
			"Take photos of kids in daily outfits, have meeting spots, consider wristbands with contact info",
			"Safety", 7))
	}

	items = append(items,
		newItem("🎫 Check-In for Park Reservations",
			"Verify park reservations and Lightning Lane bookings in My Disney Experience",
			"Day-Of", 0),
		newItem("🥤 Pack Refillable Water Bottles",
			"Bring water bottles to stay hydrated (free water refills at quick-service locations)",
			"Packing", 1),
		newItem("🍿 Bring Snacks",
			"Pack granola bars, crackers, or fruit for quick energy between meals",
			"Packing", 1),
		newItem("📸 Charge Camera/Phone",
			"Fully charge all devices the night before park days",
			"Technology", 0),
	)

	return items
}

// Progress summarizes how much of the checklist is done.
func Progress(items []domain.ChecklistItem) domain.ChecklistProgress {
	total := len(items)
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	percentage := 0
	if total > 0 {
		percentage = int(float64(completed)/float64(total)*100 + 0.5)
	}
	return domain.ChecklistProgress{Completed: completed, Total: total, Percentage: percentage}
}

func newItem(title, description, category string, daysBeforeTrip int) domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		Category:       category,
		DaysBeforeTrip: daysBeforeTrip,
	}
}
