// Package handlers provides HTTP handlers for the shopping list endpoints
package handlers

import (
	"net/http"

	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shopping"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ShoppingHandlers handles shopping list API requests
type ShoppingHandlers struct {
	shoppingService inbound.ShoppingService
	logger          *zap.Logger
}

// NewShoppingHandlers creates a new shopping handlers instance
func NewShoppingHandlers(shoppingService inbound.ShoppingService, logger *zap.Logger) *ShoppingHandlers {
	return &ShoppingHandlers{
		shoppingService: shoppingService,
		logger:          logger,
	}
}

// AddShoppingItemRequest represents a manual shopping list entry
type AddShoppingItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category,omitempty"`
}

// ImportShoppingItemsRequest carries entries produced elsewhere, such as a
// generated menu's shopping list
type ImportShoppingItemsRequest struct {
	Items []shopping.Item `json:"items"`
}

// List handles GET /api/v1/shopping
func (h *ShoppingHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.shoppingService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Add handles POST /api/v1/shopping
func (h *ShoppingHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req AddShoppingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.shoppingService.AddItem(r.Context(), inbound.AddShoppingItemCommand{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Item added to shopping list",
	})
}

// AddFromRecipe handles POST /api/v1/shopping/from-recipe
func (h *ShoppingHandlers) AddFromRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipe.Recipe
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.shoppingService.AddMissingFromRecipe(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Missing ingredients added to shopping list",
	})
}

// Import handles POST /api/v1/shopping/import
func (h *ShoppingHandlers) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportShoppingItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.shoppingService.ImportItems(r.Context(), req.Items)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Shopping list entries imported",
	})
}

// Toggle handles POST /api/v1/shopping/{id}/toggle
func (h *ShoppingHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	items, err := h.shoppingService.ToggleItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Delete handles DELETE /api/v1/shopping/{id}
func (h *ShoppingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	items, err := h.shoppingService.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Entry removed",
	})
}

// ClearChecked handles DELETE /api/v1/shopping/checked
func (h *ShoppingHandlers) ClearChecked(w http.ResponseWriter, r *http.Request) {
	items, err := h.shoppingService.ClearChecked(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Checked entries cleared",
	})
}
