package checklist

import (
	"testing"

	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripLengthDays(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      int
	}{
		{"week", "2025-12-06", "2025-12-13", 8},
		{"single day", "2025-12-06", "2025-12-06", 1},
		{"bad input", "soon", "2025-12-13", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripLengthDays(tt.startDate, tt.endDate))
		})
	}
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems("Walt Disney World", 4, "2025-12-06", "2025-12-13")
	require.NotEmpty(t, items)

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Category)
		assert.False(t, item.Completed)
	}

	assert.Contains(t, titles, "⚡ Book Genie+ Lightning Lanes")
	assert.Contains(t, titles, "🚸 Prepare Child Safety Plan")
	assert.Contains(t, items[0].Description, "4-day park tickets")
	assert.Contains(t, items[1].Description, "8 nights")
}

func TestDefaultItems_ConditionalItems(t *testing.T) {
	items := DefaultItems("Disneyland", 2, "2025-12-06", "2025-12-08")
	for _, item := range items {
		assert.NotEqual(t, "⚡ Book Genie+ Lightning Lanes", item.Title)
		assert.NotEqual(t, "🚸 Prepare Child Safety Plan", item.Title)
	}
}

func TestMissing(t *testing.T) {
	existing := []domain.ChecklistItem{
		{Title: "🩹 First Aid Kit"},
		{Title: "Remember the autograph book for the kids"},
	}
	added := Missing(existing)

	titles := make([]string, len(added))
	for i, item := range added {
		titles[i] = item.Title
		assert.Equal(t, suggestedLeadDays, item.DaysBeforeTrip)
	}
	assert.NotContains(t, titles, "🩹 First Aid Kit")
	assert.NotContains(t, titles, "🎁 Autograph Book")
	assert.Contains(t, titles, "👕 Extra Clothes")
}

func TestMissing_NothingLeft(t *testing.T) {
	existing := Missing(nil)
	require.Len(t, existing, 6)
	assert.Empty(t, Missing(existing))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, domain.ChecklistProgress{}, Progress(nil))

	items := []domain.ChecklistItem{
		{Completed: true},
		{Completed: true},
		{Completed: false},
	}
	got := Progress(items)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 67, got.Percentage)
}
