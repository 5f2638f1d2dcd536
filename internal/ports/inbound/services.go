// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shopping"
	"github.com/fridgewise/core/internal/domain/stats"
)

// InventoryService defines the use cases for the fridge inventory.
// Mutations return the updated collection so driving adapters never need
// a mutate-then-reload round trip.
type InventoryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddItemCommand) ([]inventory.Item, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) ([]inventory.Item, error)
	DeleteItem(ctx context.Context, id string) ([]inventory.Item, error)
	ImportScanned(ctx context.Context, cmd ImportScannedCommand) ([]inventory.Item, error)

	// Queries - operations that read state
	List(ctx context.Context) ([]inventory.Item, error)
	RankedByUrgency(ctx context.Context) ([]inventory.Item, error)
	Expiring(ctx context.Context) ([]inventory.Item, error)
	Overdue(ctx context.Context) ([]inventory.Item, error)
	GroupedByCategory(ctx context.Context) (map[inventory.Category][]inventory.Item, error)
	EstimatedSavings(ctx context.Context) (float64, error)
}

// ChefService defines the generation use cases. Nothing here persists on
// its own: recipe generation appends to history and bumps counters as an
// explicit follow-up, and fridge scans only return candidates for the
// user to confirm before ImportScanned stores them.
type ChefService interface {
	GenerateRecipe(ctx context.Context, cmd GenerateRecipeCommand) (recipe.Recipe, error)
	GenerateMenu(ctx context.Context, cmd GenerateMenuCommand) (recipe.GuestMenu, error)
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (recipe.MealPlan, error)
	ScanFridge(ctx context.Context, cmd ScanFridgeCommand) ([]ScannedItem, error)
	Chat(ctx context.Context, cmd ChatCommand) (string, error)
}

// LibraryService defines the saved-recipe and history use cases
type LibraryService interface {
	SavedRecipes(ctx context.Context) ([]recipe.Recipe, error)
	SaveRecipe(ctx context.Context, r recipe.Recipe) ([]recipe.Recipe, error)
	RemoveSavedRecipe(ctx context.Context, id string) ([]recipe.Recipe, error)
	History(ctx context.Context) ([]recipe.Recipe, error)
	AddToHistory(ctx context.Context, r recipe.Recipe) ([]recipe.Recipe, error)
}

// ShoppingService defines the shopping list use cases
type ShoppingService interface {
	List(ctx context.Context) ([]shopping.Item, error)
	AddItem(ctx context.Context, cmd AddShoppingItemCommand) ([]shopping.Item, error)
	AddMissingFromRecipe(ctx context.Context, r recipe.Recipe) ([]shopping.Item, error)
	ImportItems(ctx context.Context, items []shopping.Item) ([]shopping.Item, error)
	ToggleItem(ctx context.Context, id string) ([]shopping.Item, error)
	DeleteItem(ctx context.Context, id string) ([]shopping.Item, error)
	ClearChecked(ctx context.Context) ([]shopping.Item, error)
}

// StatsService defines the impact statistics use cases
type StatsService interface {
	Snapshot(ctx context.Context) (stats.Impact, error)
	Increment(ctx context.Context, key stats.Key, amount float64) (stats.Impact, error)
}

// SettingsService defines onboarding state and full local reset
type SettingsService interface {
	Onboarded(ctx context.Context) (bool, error)
	SetOnboarded(ctx context.Context, done bool) error
	ClearAllData(ctx context.Context) error
}

// Command objects for operations

// AddItemCommand contains data for adding an inventory item. ExpiryDate
// may be nil; the category's default shelf life fills it in.
type AddItemCommand struct {
	Name       string `validate:"required"`
	Quantity   string
	Unit       string
	Category   string
	ExpiryDate *time.Time
}

// UpdateItemCommand contains data for editing an inventory item in place
type UpdateItemCommand struct {
	ID         string `validate:"required"`
	Name       string `validate:"required"`
	Quantity   string
	Unit       string
	Category   string
	ExpiryDate time.Time `validate:"required"`
}

// ImportScannedCommand merges user-confirmed scan results into inventory
type ImportScannedCommand struct {
	Items []ScannedItem `validate:"required,min=1,dive"`
}

// ScannedItem is one recognized product, either as returned from a fridge
// scan for confirmation or as confirmed for import
type ScannedItem struct {
	Name       string  `json:"name" validate:"required"`
	Quantity   string  `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// GenerateRecipeCommand contains the constraints for one recipe request.
// SelectedItemIDs is the user's explicit candidate choice; when empty the
// expiring-soonest items are prioritized automatically.
type GenerateRecipeCommand struct {
	SelectedItemIDs []string
	Servings        int `validate:"omitempty,min=1,max=12"`
	MaxCookTime     int `validate:"omitempty,min=5,max=480"`
	Difficulty      string
	Dietary         []string
}

// GenerateMenuCommand contains the constraints for a guest menu request
type GenerateMenuCommand struct {
	GuestCount int    `validate:"required,min=1,max=20"`
	Budget     string `validate:"omitempty,oneof=economy standard premium"`
	City       string
}

// GenerateMealPlanCommand contains the constraints for a multi-day plan.
// Slots defaults to breakfast, lunch and dinner when empty.
type GenerateMealPlanCommand struct {
	Days      int `validate:"required,min=1,max=7"`
	Slots     []string
	StartDate time.Time
	Servings  int `validate:"omitempty,min=1,max=12"`
}

// ScanFridgeCommand carries one photo of the fridge contents
type ScanFridgeCommand struct {
	ImageBase64 string `validate:"required"`
}

// ChatMessage is one prior turn of the assistant conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatCommand carries the conversation so far plus the new user message
type ChatCommand struct {
	Message string `validate:"required"`
	History []ChatMessage
}

// AddShoppingItemCommand contains data for a manual shopping list entry
type AddShoppingItemCommand struct {
	Name     string `validate:"required"`
	Quantity string
	Unit     string
	Category string
}
