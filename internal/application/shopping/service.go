// Package shopping provides the application layer for the shopping list
package shopping

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shared"
	"github.com/fridgewise/core/internal/domain/shopping"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// Service implements the shopping list use cases
type Service struct {
	store    outbound.CollectionStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates the shopping service
func NewService(store outbound.CollectionStore, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   logger.Named("shopping-service"),
	}
}

// List returns the shopping list in stored order
func (s *Service) List(ctx context.Context) ([]shopping.Item, error) {
	return s.load(ctx)
}

// AddItem appends one manual entry
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddShoppingItemCommand) ([]shopping.Item, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	item := shopping.NewItem(cmd.Name, cmd.Quantity, cmd.Unit, inventory.ParseCategory(cmd.Category), "")
	items = append(items, item)

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("Shopping item added", zap.String("item_id", item.ID), zap.String("name", item.Name))

	return items, nil
}

// AddMissingFromRecipe appends the recipe's unavailable ingredients, each
// tagged with the recipe title it came from. Entries are never merged by
// name, tapping twice adds twice.
func (s *Service) AddMissingFromRecipe(ctx context.Context, r recipe.Recipe) ([]shopping.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, ing := range r.MissingIngredients() {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		items = append(items, shopping.NewItem(ing.Name, ing.Amount, ing.Unit, inventory.CategoryOther, r.Title))
		added++
	}
	if added == 0 {
		return items, nil
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("Missing ingredients added to shopping list",
		zap.String("recipe_id", r.ID),
		zap.Int("count", added),
	)

	return items, nil
}

// ImportItems bulk-appends entries, typically a guest menu's shopping
// list. Entries without an id get one; unnamed entries are dropped.
func (s *Service) ImportItems(ctx context.Context, incoming []shopping.Item) ([]shopping.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, item := range incoming {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		if item.ID == "" {
			item.ID = shared.NewID()
		}
		items = append(items, item)
		added++
	}
	if added == 0 {
		return items, nil
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("Shopping items imported", zap.Int("count", added))

	return items, nil
}

// ToggleItem flips the checked state of one entry. An unknown id changes
// nothing.
func (s *Service) ToggleItem(ctx context.Context, id string) ([]shopping.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	toggled := false
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			toggled = true
			break
		}
	}
	if !toggled {
		s.logger.Debug("Toggle of absent shopping item ignored", zap.String("item_id", id))
		return items, nil
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteItem removes one entry by id; an absent id is a no-op
func (s *Service) DeleteItem(ctx context.Context, id string) ([]shopping.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]shopping.Item, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !removed {
		return items, nil
	}

	if err := s.save(ctx, remaining); err != nil {
		return nil, err
	}

	s.logger.Info("Shopping item deleted", zap.String("item_id", id))

	return remaining, nil
}

// ClearChecked removes every checked entry in one sweep
func (s *Service) ClearChecked(ctx context.Context) ([]shopping.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]shopping.Item, 0, len(items))
	for _, item := range items {
		if item.Checked {
			continue
		}
		remaining = append(remaining, item)
	}
	if len(remaining) == len(items) {
		return items, nil
	}

	if err := s.save(ctx, remaining); err != nil {
		return nil, err
	}

	s.logger.Info("Checked shopping items cleared", zap.Int("removed", len(items)-len(remaining)))

	return remaining, nil
}

func (s *Service) load(ctx context.Context) ([]shopping.Item, error) {
	data, err := s.store.Get(ctx, outbound.CollectionShoppingList)
	if err != nil {
		return nil, errors.NewStorageError("read shopping list", err)
	}
	if len(data) == 0 {
		return []shopping.Item{}, nil
	}
	var items []shopping.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.NewStorageError("decode shopping list", err)
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, items []shopping.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.NewStorageError("encode shopping list", err)
	}
	if err := s.store.Set(ctx, outbound.CollectionShoppingList, data); err != nil {
		return errors.NewStorageError("write shopping list", err)
	}
	return nil
}
