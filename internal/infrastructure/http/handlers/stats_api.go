// Package handlers provides HTTP handlers for the impact statistics endpoint
package handlers

import (
	"net/http"

	"github.com/fridgewise/core/internal/ports/inbound"
	"go.uber.org/zap"
)

// StatsHandlers handles impact statistics API requests
type StatsHandlers struct {
	statsService inbound.StatsService
	logger       *zap.Logger
}

// NewStatsHandlers creates a new stats handlers instance
func NewStatsHandlers(statsService inbound.StatsService, logger *zap.Logger) *StatsHandlers {
	return &StatsHandlers{
		statsService: statsService,
		logger:       logger,
	}
}

// Snapshot handles GET /api/v1/stats
func (h *StatsHandlers) Snapshot(w http.ResponseWriter, r *http.Request) {
	impact, err := h.statsService.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: impact})
}
