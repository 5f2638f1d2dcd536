// Package settings provides the application layer for the onboarding
// marker and the full local data reset
package settings

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/stats"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// onboardingRecord is the stored shape of the onboarding collection
type onboardingRecord struct {
	Completed bool `json:"completed"`
}

// Service implements the settings use cases
type Service struct {
	store  outbound.CollectionStore
	logger *zap.Logger
}

// NewService creates the settings service
func NewService(store outbound.CollectionStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("settings-service"),
	}
}

// Onboarded reports whether the user has completed the first-run flow.
// A fresh install reads as not onboarded.
func (s *Service) Onboarded(ctx context.Context) (bool, error) {
	data, err := s.store.Get(ctx, outbound.CollectionOnboarding)
	if err != nil {
		return false, errors.NewStorageError("read onboarding flag", err)
	}
	if len(data) == 0 {
		return false, nil
	}
	var record onboardingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return false, errors.NewStorageError("decode onboarding flag", err)
	}
	return record.Completed, nil
}

// SetOnboarded stores the onboarding marker
func (s *Service) SetOnboarded(ctx context.Context, done bool) error {
	data, err := json.Marshal(onboardingRecord{Completed: done})
	if err != nil {
		return errors.NewStorageError("encode onboarding flag", err)
	}
	if err := s.store.Set(ctx, outbound.CollectionOnboarding, data); err != nil {
		return errors.NewStorageError("write onboarding flag", err)
	}
	return nil
}

// ClearAllData empties every collection and restores the stats baseline.
// This is the one destructive operation in the app; callers confirm with
// the user before invoking it.
func (s *Service) ClearAllData(ctx context.Context) error {
	for _, collection := range outbound.Collections() {
		if err := s.store.Delete(ctx, collection); err != nil {
			return errors.NewStorageError("clear "+collection, err)
		}
	}

	baseline, err := json.Marshal(stats.Baseline())
	if err != nil {
		return errors.NewStorageError("encode stats baseline", err)
	}
	if err := s.store.Set(ctx, outbound.CollectionStats, baseline); err != nil {
		return errors.NewStorageError("write stats baseline", err)
	}

	s.logger.Info("All local data cleared")

	return nil
}
