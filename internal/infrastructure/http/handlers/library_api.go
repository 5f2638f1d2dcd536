// Package handlers provides HTTP handlers for the recipe library endpoints
package handlers

import (
	"net/http"

	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LibraryHandlers handles saved recipe and history API requests
type LibraryHandlers struct {
	libraryService inbound.LibraryService
	logger         *zap.Logger
}

// NewLibraryHandlers creates a new library handlers instance
func NewLibraryHandlers(libraryService inbound.LibraryService, logger *zap.Logger) *LibraryHandlers {
	return &LibraryHandlers{
		libraryService: libraryService,
		logger:         logger,
	}
}

// ListSaved handles GET /api/v1/library/saved
func (h *LibraryHandlers) ListSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := h.libraryService.SavedRecipes(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: saved})
}

// Save handles POST /api/v1/library/saved
func (h *LibraryHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var req recipe.Recipe
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	saved, err := h.libraryService.SaveRecipe(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    saved,
		Message: "Recipe saved",
	})
}

// RemoveSaved handles DELETE /api/v1/library/saved/{id}
func (h *LibraryHandlers) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := h.libraryService.RemoveSavedRecipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    saved,
		Message: "Recipe removed",
	})
}

// ListHistory handles GET /api/v1/library/history
func (h *LibraryHandlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.libraryService.History(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: history})
}

// AddHistory handles POST /api/v1/library/history
func (h *LibraryHandlers) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req recipe.Recipe
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	history, err := h.libraryService.AddToHistory(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    history,
		Message: "Recipe recorded in history",
	})
}
