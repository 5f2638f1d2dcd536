// Package shopping models the shopping list
package shopping

import (
	"errors"
	"strings"
	"time"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/shared"
)

// Item represents one shopping list entry. Identity is the id alone: the
// same product name may appear as several distinct entries, entries are
// never merged by name.
type Item struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Quantity   string             `json:"quantity"`
	Unit       string             `json:"unit,omitempty"`
	Category   inventory.Category `json:"category"`
	Checked    bool               `json:"checked"`
	AddedAt    time.Time          `json:"addedAt"`
	RecipeName string             `json:"recipeName,omitempty"`
}

// NewItem creates a shopping list entry with a fresh id. recipeName records
// which recipe asked for it and stays empty for manual entries.
func NewItem(name, quantity, unit string, category inventory.Category, recipeName string) Item {
	return Item{
		ID:         shared.NewID(),
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		Category:   category,
		AddedAt:    time.Now(),
		RecipeName: recipeName,
	}
}

// Validate validates the entry
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("shopping item name is required")
	}
	return nil
}
