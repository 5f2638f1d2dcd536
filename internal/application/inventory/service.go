// Package inventory provides the application layer for the fridge
// inventory: CRUD against the snapshot store plus the urgency queries the
// UI renders its lists and badges from.
package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/stats"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// Config carries the ranking constants
type Config struct {
	SavingsPerItem     float64
	ExpiringWindowDays int
}

// DefaultConfig returns the ranking defaults
func DefaultConfig() Config {
	return Config{
		SavingsPerItem:     150,
		ExpiringWindowDays: inventory.DefaultExpiringWindowDays,
	}
}

// Service implements the inventory use cases. Mutations follow a
// read-modify-write against the whole snapshot; with one UI thread of
// control there is no concurrent writer, so no transaction is taken.
type Service struct {
	store    outbound.CollectionStore
	stats    inbound.StatsService
	cfg      Config
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates the inventory service
func NewService(store outbound.CollectionStore, statsSvc inbound.StatsService, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		stats:    statsSvc,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger.Named("inventory-service"),
		now:      time.Now,
	}
}

// AddItem stores one new item and returns the updated inventory. A
// missing expiry date is filled from the category's default shelf life.
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddItemCommand) ([]inventory.Item, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var expiry time.Time
	if cmd.ExpiryDate != nil {
		expiry = *cmd.ExpiryDate
	}
	item := inventory.NewItem(cmd.Name, cmd.Quantity, cmd.Unit, inventory.ParseCategory(cmd.Category), expiry)

	items = append(items, item)
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item added",
		zap.String("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("category", string(item.Category)),
	)

	return items, nil
}

// UpdateItem edits an item in place, keeping its position and AddedAt
func (s *Service) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) ([]inventory.Item, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].ID != cmd.ID {
			continue
		}
		items[i].Name = cmd.Name
		items[i].Quantity = cmd.Quantity
		items[i].Unit = cmd.Unit
		items[i].Category = inventory.ParseCategory(cmd.Category)
		items[i].ExpiryDate = cmd.ExpiryDate
		updated = true
		break
	}
	if !updated {
		return nil, errors.NewNotFoundError("inventory item")
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item updated", zap.String("item_id", cmd.ID))

	return items, nil
}

// DeleteItem removes an item by id. Deleting an id that is already gone
// is a no-op, not an error: the end state is what the user asked for.
func (s *Service) DeleteItem(ctx context.Context, id string) ([]inventory.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]inventory.Item, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !removed {
		s.logger.Debug("Delete of absent inventory item ignored", zap.String("item_id", id))
		return items, nil
	}

	if err := s.save(ctx, remaining); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item deleted", zap.String("item_id", id))

	return remaining, nil
}

// ImportScanned merges user-confirmed scan results into the inventory and
// counts them toward the scan statistics
func (s *Service) ImportScanned(ctx context.Context, cmd inbound.ImportScannedCommand) ([]inventory.Item, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, scanned := range cmd.Items {
		item := inventory.NewItem(
			scanned.Name,
			scanned.Quantity,
			scanned.Unit,
			inventory.ParseCategory(scanned.Category),
			time.Time{},
		)
		if scanned.Confidence > 0 {
			confidence := scanned.Confidence
			item.Confidence = &confidence
		}
		items = append(items, item)
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	if _, err := s.stats.Increment(ctx, stats.KeyItemsScanned, float64(len(cmd.Items))); err != nil {
		s.logger.Error("Failed to count scanned items", zap.Error(err))
	}

	s.logger.Info("Scanned items imported", zap.Int("count", len(cmd.Items)))

	return items, nil
}

// List returns the inventory in stored order
func (s *Service) List(ctx context.Context) ([]inventory.Item, error) {
	return s.load(ctx)
}

// RankedByUrgency returns the inventory most urgent first
func (s *Service) RankedByUrgency(ctx context.Context) ([]inventory.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.SortByUrgencyAt(items, s.now()), nil
}

// Expiring returns the items to act on within the configured window
func (s *Service) Expiring(ctx context.Context) ([]inventory.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.SelectExpiringAt(items, s.cfg.ExpiringWindowDays, s.now()), nil
}

// Overdue returns the items already past their expiry date
func (s *Service) Overdue(ctx context.Context) ([]inventory.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.OverdueAt(items, s.now()), nil
}

// GroupedByCategory buckets the inventory for the category view
func (s *Service) GroupedByCategory(ctx context.Context) (map[inventory.Category][]inventory.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.GroupByCategory(items), nil
}

// EstimatedSavings prices the current expiring selection
func (s *Service) EstimatedSavings(ctx context.Context) (float64, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return inventory.EstimateSavingsAt(items, s.cfg.ExpiringWindowDays, s.cfg.SavingsPerItem, s.now()), nil
}

func (s *Service) load(ctx context.Context) ([]inventory.Item, error) {
	data, err := s.store.Get(ctx, outbound.CollectionInventory)
	if err != nil {
		return nil, errors.NewStorageError("read inventory", err)
	}
	if len(data) == 0 {
		return []inventory.Item{}, nil
	}
	var items []inventory.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.NewStorageError("decode inventory", err)
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, items []inventory.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.NewStorageError("encode inventory", err)
	}
	if err := s.store.Set(ctx, outbound.CollectionInventory, data); err != nil {
		return errors.NewStorageError("write inventory", err)
	}
	return nil
}
