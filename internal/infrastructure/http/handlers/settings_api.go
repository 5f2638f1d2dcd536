// Package handlers provides HTTP handlers for settings and reset endpoints
package handlers

import (
	"net/http"

	"github.com/fridgewise/core/internal/ports/inbound"
	"go.uber.org/zap"
)

// SettingsHandlers handles onboarding state and data reset requests
type SettingsHandlers struct {
	settingsService inbound.SettingsService
	logger          *zap.Logger
}

// NewSettingsHandlers creates a new settings handlers instance
func NewSettingsHandlers(settingsService inbound.SettingsService, logger *zap.Logger) *SettingsHandlers {
	return &SettingsHandlers{
		settingsService: settingsService,
		logger:          logger,
	}
}

// OnboardingRequest represents the onboarding completion flag
type OnboardingRequest struct {
	Completed bool `json:"completed"`
}

// GetOnboarding handles GET /api/v1/settings/onboarding
func (h *SettingsHandlers) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	done, err := h.settingsService.Onboarded(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]bool{"completed": done},
	})
}

// SetOnboarding handles PUT /api/v1/settings/onboarding
func (h *SettingsHandlers) SetOnboarding(w http.ResponseWriter, r *http.Request) {
	var req OnboardingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.settingsService.SetOnboarded(r.Context(), req.Completed); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Onboarding state updated",
	})
}

// Reset handles POST /api/v1/settings/reset
func (h *SettingsHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("Full data reset requested")

	if err := h.settingsService.ClearAllData(r.Context()); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "All local data cleared",
	})
}
