package checklist

import (
	"strings"

	"tripplanner/internal/domain"
)

// suggestion is a commonly forgotten item. matchKey is the bare item name
// searched for in existing checklist titles so the same item is never added
// twice.
type suggestion struct {
	title       string
	description string
	category    string
	matchKey    string
}

var suggestions = []suggestion{
	{"🩹 First Aid Kit", "Band-aids, pain relievers, blister treatment, allergy medication", "Health", "first aid kit"},
	{"🕶️ Sunglasses & Hats", "Sun protection for everyone in your party", "Packing", "sunglasses & hats"},
	{"👕 Extra Clothes", "Change of clothes in case of spills, rain, or water rides", "Packing", "extra clothes"},
	{"💰 Budget Extra Cash", "Plan for souvenirs, snacks, and unexpected purchases", "Planning", "budget extra cash"},
	{"🎁 Autograph Book", "Bring book and Sharpie for character meet-and-greets", "Fun", "autograph book"},
	{"📦 Ship Souvenirs Home", "Consider having large purchases shipped to avoid packing them", "Planning", "ship souvenirs home"},
}

// suggestedLeadDays is the scheduling hint given to every suggested item.
const suggestedLeadDays = 7

// Missing returns suggested items not already present in the checklist.
func Missing(existing []domain.ChecklistItem) []domain.ChecklistItem {
	var added []domain.ChecklistItem
	for _, s := range suggestions {
		if hasTitleContaining(existing, s.matchKey) {
			continue
		}
		item := newItem(s.title, s.description, s.category, suggestedLeadDays)
		added = append(added, item)
	}
	return added
}

func hasTitleContaining(items []domain.ChecklistItem, key string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), key) {
			return true
		}
	}
	return false
}
