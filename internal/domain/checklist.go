package domain

import "context"

// ChecklistItem is one planning or packing task for a trip.
// DaysBeforeTrip is a scheduling hint: 0 means a day-of task.
type ChecklistItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	DaysBeforeTrip int    `json:"days_before_trip"`
	Completed      bool   `json:"completed"`
}

// ChecklistProgress summarizes completion of a trip's checklist.
type ChecklistProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ChecklistService defines the business logic for checklist operations on a
// trip record.
type ChecklistService interface {
	List(ctx context.Context, code string) ([]ChecklistItem, *ChecklistProgress, error)
	AddItem(ctx context.Context, code, title, description, category string) (*ChecklistItem, error)
	SetCompleted(ctx context.Context, code, itemID string, completed bool) error
	DeleteItem(ctx context.Context, code, itemID string) error
	AddSuggestions(ctx context.Context, code string) ([]ChecklistItem, error)
}
