package recipe

import (
	"strings"
	"time"
)

// MealSlot represents one meal of a planned day
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// AllSlots lists the meal slots in day order
func AllSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}
}

// ParseMealSlot maps free-form slot text onto the fixed set, falling back
// to dinner
func ParseMealSlot(raw string) MealSlot {
	switch MealSlot(strings.ToLower(strings.TrimSpace(raw))) {
	case SlotBreakfast:
		return SlotBreakfast
	case SlotLunch:
		return SlotLunch
	default:
		return SlotDinner
	}
}

// PlanEntry represents the outcome of one meal-slot generation. A failed
// slot carries its error message so the plan can render partial progress
// without losing the days that did generate.
type PlanEntry struct {
	Date   time.Time `json:"date"`
	Slot   MealSlot  `json:"slot"`
	Recipe *Recipe   `json:"recipe,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// MealPlan represents a multi-day plan, one entry per requested slot in
// generation order
type MealPlan struct {
	ID          string      `json:"id"`
	StartDate   time.Time   `json:"startDate"`
	Days        int         `json:"days"`
	Entries     []PlanEntry `json:"entries"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// FailedEntries returns the entries whose generation failed
func (p MealPlan) FailedEntries() []PlanEntry {
	var failed []PlanEntry
	for _, entry := range p.Entries {
		if entry.Error != "" {
			failed = append(failed, entry)
		}
	}
	return failed
}
