// Package library provides the application layer for the saved-recipe
// collection and the bounded generation history.
package library

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// Config bounds the history collection
type Config struct {
	HistoryLimit int
}

// DefaultConfig returns the library defaults
func DefaultConfig() Config {
	return Config{HistoryLimit: 50}
}

// Service implements the saved-recipe and history use cases. History
// recency is insertion order: re-generating a known recipe moves it to
// the front rather than duplicating it.
type Service struct {
	store  outbound.CollectionStore
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the library service
func NewService(store outbound.CollectionStore, cfg Config, logger *zap.Logger) *Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.Named("library-service"),
		now:    time.Now,
	}
}

// SavedRecipes returns the saved collection, most recently saved first
func (s *Service) SavedRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	return s.load(ctx, outbound.CollectionSavedRecipes)
}

// SaveRecipe prepends the recipe with a save timestamp. Saving an id that
// is already in the collection changes nothing; the operation is
// idempotent.
func (s *Service) SaveRecipe(ctx context.Context, r recipe.Recipe) ([]recipe.Recipe, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	saved, err := s.load(ctx, outbound.CollectionSavedRecipes)
	if err != nil {
		return nil, err
	}

	for _, existing := range saved {
		if existing.ID == r.ID {
			s.logger.Debug("Recipe already saved", zap.String("recipe_id", r.ID))
			return saved, nil
		}
	}

	savedAt := s.now()
	r.SavedAt = &savedAt
	saved = append([]recipe.Recipe{r}, saved...)

	if err := s.save(ctx, outbound.CollectionSavedRecipes, saved); err != nil {
		return nil, err
	}

	s.logger.Info("Recipe saved",
		zap.String("recipe_id", r.ID),
		zap.String("title", r.Title),
	)

	return saved, nil
}

// RemoveSavedRecipe filters the recipe out by id. Removing an id that is
// not there leaves the collection as is, without an error.
func (s *Service) RemoveSavedRecipe(ctx context.Context, id string) ([]recipe.Recipe, error) {
	saved, err := s.load(ctx, outbound.CollectionSavedRecipes)
	if err != nil {
		return nil, err
	}

	remaining := make([]recipe.Recipe, 0, len(saved))
	removed := false
	for _, existing := range saved {
		if existing.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !removed {
		s.logger.Debug("Remove of unsaved recipe ignored", zap.String("recipe_id", id))
		return saved, nil
	}

	if err := s.save(ctx, outbound.CollectionSavedRecipes, remaining); err != nil {
		return nil, err
	}

	s.logger.Info("Recipe removed from saved", zap.String("recipe_id", id))

	return remaining, nil
}

// History returns the generation history, most recent first
func (s *Service) History(ctx context.Context) ([]recipe.Recipe, error) {
	return s.load(ctx, outbound.CollectionHistory)
}

// AddToHistory prepends the recipe, removing any earlier entry with the
// same id, and truncates to the configured limit
func (s *Service) AddToHistory(ctx context.Context, r recipe.Recipe) ([]recipe.Recipe, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	history, err := s.load(ctx, outbound.CollectionHistory)
	if err != nil {
		return nil, err
	}

	merged := make([]recipe.Recipe, 0, len(history)+1)
	merged = append(merged, r)
	for _, existing := range history {
		if existing.ID == r.ID {
			continue
		}
		merged = append(merged, existing)
	}
	if len(merged) > s.cfg.HistoryLimit {
		merged = merged[:s.cfg.HistoryLimit]
	}

	if err := s.save(ctx, outbound.CollectionHistory, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (s *Service) load(ctx context.Context, collection string) ([]recipe.Recipe, error) {
	data, err := s.store.Get(ctx, collection)
	if err != nil {
		return nil, errors.NewStorageError("read "+collection, err)
	}
	if len(data) == 0 {
		return []recipe.Recipe{}, nil
	}
	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, errors.NewStorageError("decode "+collection, err)
	}
	return recipes, nil
}

func (s *Service) save(ctx context.Context, collection string, recipes []recipe.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return errors.NewStorageError("encode "+collection, err)
	}
	if err := s.store.Set(ctx, collection, data); err != nil {
		return errors.NewStorageError("write "+collection, err)
	}
	return nil
}
