// Package recipe models generated recipes, guest menus and meal plans.
// Recipes are only ever created from generation output, never hand
// authored, so the types here mirror the JSON shape the generation
// collaborator is instructed to produce.
package recipe

import (
	"errors"
	"strings"
	"time"
)

// Difficulty represents recipe difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps free-form difficulty text onto the fixed set,
// falling back to medium for anything unrecognized or empty
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Ingredient represents an ingredient line in a generated recipe.
// Amount is free text for the same reason inventory quantities are.
// Available marks ingredients already present in the user's inventory.
type Ingredient struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Unit      string `json:"unit,omitempty"`
	Available bool   `json:"available"`
}

// Recipe represents one generated recipe. UsesExpiringProducts lists the
// inventory item names the recipe was designed to consume before they
// spoil; it is a subset of the names offered at generation time.
type Recipe struct {
	ID                   string       `json:"id"`
	Title                string       `json:"title"`
	Description          string       `json:"description,omitempty"`
	CookTime             int          `json:"cookTime"`
	Servings             int          `json:"servings"`
	Difficulty           Difficulty   `json:"difficulty"`
	Ingredients          []Ingredient `json:"ingredients"`
	Instructions         []string     `json:"instructions"`
	UsesExpiringProducts []string     `json:"usesExpiringProducts"`
	GeneratedAt          time.Time    `json:"generatedAt"`
	SavedAt              *time.Time   `json:"savedAt,omitempty"`
}

// Validate validates the recipe
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("recipe id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("recipe title is required")
	}
	return nil
}

// MissingIngredients returns the ingredients not already available in the
// inventory, the set "add missing to shopping list" works from
func (r Recipe) MissingIngredients() []Ingredient {
	var missing []Ingredient
	for _, ing := range r.Ingredients {
		if !ing.Available {
			missing = append(missing, ing)
		}
	}
	return missing
}
