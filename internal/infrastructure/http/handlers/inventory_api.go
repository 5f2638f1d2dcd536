// Package handlers provides HTTP handlers for the inventory API endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InventoryHandlers handles fridge inventory API requests
type InventoryHandlers struct {
	inventoryService inbound.InventoryService
	logger           *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(
	inventoryService inbound.InventoryService,
	logger *zap.Logger,
) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// ItemRequest represents an inventory item create or update payload
type ItemRequest struct {
	Name       string     `json:"name"`
	Quantity   string     `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// ImportScannedRequest carries user-confirmed scan results
type ImportScannedRequest struct {
	Items []inbound.ScannedItem `json:"items"`
}

// List handles GET /api/v1/inventory
func (h *InventoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Add handles POST /api/v1/inventory
func (h *InventoryHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.inventoryService.AddItem(r.Context(), inbound.AddItemCommand{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Item added to inventory",
	})
}

// Update handles PUT /api/v1/inventory/{id}
func (h *InventoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	cmd := inbound.UpdateItemCommand{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	}
	if req.ExpiryDate != nil {
		cmd.ExpiryDate = *req.ExpiryDate
	}

	items, err := h.inventoryService.UpdateItem(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Item updated",
	})
}

// Delete handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Item removed",
	})
}

// Import handles POST /api/v1/inventory/import
func (h *InventoryHandlers) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportScannedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.inventoryService.ImportScanned(r.Context(), inbound.ImportScannedCommand{
		Items: req.Items,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Scanned items imported",
	})
}

// Ranked handles GET /api/v1/inventory/ranked
func (h *InventoryHandlers) Ranked(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.RankedByUrgency(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Expiring handles GET /api/v1/inventory/expiring
func (h *InventoryHandlers) Expiring(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.Expiring(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Overdue handles GET /api/v1/inventory/overdue
func (h *InventoryHandlers) Overdue(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.Overdue(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Grouped handles GET /api/v1/inventory/grouped
func (h *InventoryHandlers) Grouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.inventoryService.GroupedByCategory(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: groups})
}

// Savings handles GET /api/v1/inventory/savings
func (h *InventoryHandlers) Savings(w http.ResponseWriter, r *http.Request) {
	savings, err := h.inventoryService.EstimatedSavings(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]float64{"savings": savings},
	})
}
