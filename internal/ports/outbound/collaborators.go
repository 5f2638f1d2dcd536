// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
)

// GenerationClient defines the interface to the external generation
// collaborator. All three calls may return prose wrapped around the JSON
// payload the caller asked for; extracting it is the caller's job. A
// missing credential is reported before any network I/O happens.
type GenerationClient interface {
	// Complete sends one instruction and returns the raw reply text
	Complete(ctx context.Context, system, prompt string) (string, error)

	// CompleteVision sends an instruction plus a base64 image payload
	CompleteVision(ctx context.Context, system, prompt, imageBase64 string) (string, error)

	// Chat sends a running conversation and returns the next reply
	Chat(ctx context.Context, system string, turns []ChatTurn) (string, error)
}

// Chat roles on the wire
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one prior exchange in a conversation
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Named collections the store keeps, one JSON snapshot each
const (
	CollectionInventory    = "inventory"
	CollectionSavedRecipes = "saved_recipes"
	CollectionHistory      = "history"
	CollectionShoppingList = "shopping_list"
	CollectionStats        = "stats"
	CollectionOnboarding   = "onboarding"
)

// Collections lists every named collection
func Collections() []string {
	return []string{
		CollectionInventory,
		CollectionSavedRecipes,
		CollectionHistory,
		CollectionShoppingList,
		CollectionStats,
		CollectionOnboarding,
	}
}

// CollectionStore defines the interface for snapshot persistence. Each
// named collection is read and written whole; partial-update logic lives
// in the application layer, not here. A missing collection reads as an
// empty snapshot (nil, nil), never as an error.
type CollectionStore interface {
	Get(ctx context.Context, collection string) ([]byte, error)
	Set(ctx context.Context, collection string, data []byte) error
	Delete(ctx context.Context, collection string) error
}
