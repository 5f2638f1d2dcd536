// Package stats models the running impact statistics record
package stats

import (
	"time"
)

// Key names one of the numeric impact counters
type Key string

const (
	KeyMoneySaved       Key = "moneySaved"
	KeyTimeSavedMinutes Key = "timeSavedMinutes"
	KeyWastePrevented   Key = "wastePreventedGrams"
	KeyRecipesGenerated Key = "recipesGenerated"
	KeyItemsScanned     Key = "itemsScanned"
)

// Impact is the single running statistics record per user. Counters only
// ever grow; the one way down is a full reset back to Baseline.
type Impact struct {
	MoneySaved          float64   `json:"moneySaved"`
	TimeSavedMinutes    float64   `json:"timeSavedMinutes"`
	WastePreventedGrams float64   `json:"wastePreventedGrams"`
	RecipesGenerated    float64   `json:"recipesGenerated"`
	ItemsScanned        float64   `json:"itemsScanned"`
	LastUpdated         time.Time `json:"lastUpdated"`
}

// Baseline returns the zero record a reset restores
func Baseline() Impact {
	return Impact{LastUpdated: time.Now()}
}

// Add increments the named counter and stamps LastUpdated. Unknown keys
// leave the record untouched apart from the timestamp.
func (s Impact) Add(key Key, amount float64) Impact {
	switch key {
	case KeyMoneySaved:
		s.MoneySaved += amount
	case KeyTimeSavedMinutes:
		s.TimeSavedMinutes += amount
	case KeyWastePrevented:
		s.WastePreventedGrams += amount
	case KeyRecipesGenerated:
		s.RecipesGenerated += amount
	case KeyItemsScanned:
		s.ItemsScanned += amount
	}
	s.LastUpdated = time.Now()
	return s
}
