// Package stats provides the application layer for the impact record
package stats

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/stats"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// Service implements the impact statistics use cases. Counters only move
// up; the full reset lives with the settings service, which rewrites the
// whole collection.
type Service struct {
	store  outbound.CollectionStore
	logger *zap.Logger
}

// NewService creates the stats service
func NewService(store outbound.CollectionStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("stats-service"),
	}
}

// Snapshot returns the current impact record. Before anything was ever
// counted it reads as the zero record.
func (s *Service) Snapshot(ctx context.Context) (stats.Impact, error) {
	return s.load(ctx)
}

// Increment adds the amount to the named counter and returns the updated
// record
func (s *Service) Increment(ctx context.Context, key stats.Key, amount float64) (stats.Impact, error) {
	impact, err := s.load(ctx)
	if err != nil {
		return stats.Impact{}, err
	}

	impact = impact.Add(key, amount)

	if err := s.save(ctx, impact); err != nil {
		return stats.Impact{}, err
	}

	s.logger.Debug("Impact counter incremented",
		zap.String("key", string(key)),
		zap.Float64("amount", amount),
	)

	return impact, nil
}

func (s *Service) load(ctx context.Context) (stats.Impact, error) {
	data, err := s.store.Get(ctx, outbound.CollectionStats)
	if err != nil {
		return stats.Impact{}, errors.NewStorageError("read stats", err)
	}
	if len(data) == 0 {
		return stats.Impact{}, nil
	}
	var impact stats.Impact
	if err := json.Unmarshal(data, &impact); err != nil {
		return stats.Impact{}, errors.NewStorageError("decode stats", err)
	}
	return impact, nil
}

func (s *Service) save(ctx context.Context, impact stats.Impact) error {
	data, err := json.Marshal(impact)
	if err != nil {
		return errors.NewStorageError("encode stats", err)
	}
	if err := s.store.Set(ctx, outbound.CollectionStats, data); err != nil {
		return errors.NewStorageError("write stats", err)
	}
	return nil
}
