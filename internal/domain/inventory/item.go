// Package inventory models the perishable items in the user's fridge and
// the urgency rules that decide which of them to cook first.
package inventory

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/fridgewise/core/internal/domain/shared"
)

// Category classifies a perishable item. The set is fixed; anything an
// external source reports outside of it is coerced to CategoryOther.
type Category string

const (
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategoryBeverages  Category = "beverages"
	CategoryCondiments Category = "condiments"
	CategoryFrozen     Category = "frozen"
	CategoryBakery     Category = "bakery"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in display order
func Categories() []Category {
	return []Category{
		CategoryDairy,
		CategoryMeat,
		CategoryVegetables,
		CategoryFruits,
		CategoryGrains,
		CategoryBeverages,
		CategoryCondiments,
		CategoryFrozen,
		CategoryBakery,
		CategoryOther,
	}
}

// ParseCategory maps free-form category text onto the fixed set,
// coercing anything unrecognized to CategoryOther
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryDairy, CategoryMeat, CategoryVegetables, CategoryFruits,
		CategoryGrains, CategoryBeverages, CategoryCondiments,
		CategoryFrozen, CategoryBakery, CategoryOther:
		return c
	default:
		return CategoryOther
	}
}

// Item represents a perishable product in the inventory.
// Quantity is deliberately free text ("1", "0.5", "2-3 шт") so that user
// input is never rejected; arithmetic consumers go through ParseQuantity.
// Confidence is set only for items produced by image recognition.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	Unit       string    `json:"unit,omitempty"`
	Category   Category  `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	AddedAt    time.Time `json:"addedAt"`
	Confidence *float64  `json:"confidence,omitempty"`
}

// NewItem creates an inventory item with a fresh id. A zero expiry date is
// filled in from the category's default shelf life.
func NewItem(name, quantity, unit string, category Category, expiry time.Time) Item {
	now := time.Now()
	if expiry.IsZero() {
		expiry = shared.AddDays(now, DefaultShelfLifeDays(category))
	}
	return Item{
		ID:         shared.NewID(),
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		Category:   category,
		ExpiryDate: expiry,
		AddedAt:    now,
	}
}

// Validate validates the item
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("item name is required")
	}
	if i.ExpiryDate.IsZero() {
		return errors.New("item expiry date is required")
	}
	return nil
}

// ParseQuantity coerces a free-text quantity into a number for estimation
// purposes. It reads the leading numeric run (decimal comma tolerated), so
// "2-3" yields 2 and "0,5" yields 0.5. Anything without a leading number
// yields 1. This is a documented approximation, not a validation layer.
func ParseQuantity(raw string) float64 {
	s := strings.TrimSpace(raw)
	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if (ch == '.' || ch == ',') && !seenDot && end > 0 {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 1
	}
	num := strings.TrimSuffix(strings.ReplaceAll(s[:end], ",", "."), ".")
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 1
	}
	return value
}
