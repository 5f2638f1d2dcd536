// Package handlers provides HTTP handlers for the generation API endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/core/internal/ports/inbound"
	"go.uber.org/zap"
)

// ChefHandlers handles recipe generation API requests
type ChefHandlers struct {
	chefService inbound.ChefService
	logger      *zap.Logger
}

// NewChefHandlers creates a new chef handlers instance
func NewChefHandlers(chefService inbound.ChefService, logger *zap.Logger) *ChefHandlers {
	return &ChefHandlers{
		chefService: chefService,
		logger:      logger,
	}
}

// GenerateRecipeRequest represents a recipe generation request
type GenerateRecipeRequest struct {
	SelectedItemIDs []string `json:"selectedItemIds,omitempty"`
	Servings        int      `json:"servings,omitempty"`
	MaxCookTime     int      `json:"maxCookTime,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	Dietary         []string `json:"dietary,omitempty"`
}

// GenerateMenuRequest represents a guest menu request
type GenerateMenuRequest struct {
	GuestCount int    `json:"guestCount"`
	Budget     string `json:"budget,omitempty"`
	City       string `json:"city,omitempty"`
}

// GenerateMealPlanRequest represents a multi-day meal plan request
type GenerateMealPlanRequest struct {
	Days      int       `json:"days"`
	Slots     []string  `json:"slots,omitempty"`
	StartDate time.Time `json:"startDate,omitempty"`
	Servings  int       `json:"servings,omitempty"`
}

// ScanFridgeRequest carries one base64-encoded fridge photo
type ScanFridgeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// ChatRequest carries the conversation so far plus the new message
type ChatRequest struct {
	Message string                `json:"message"`
	History []inbound.ChatMessage `json:"history,omitempty"`
}

// GenerateRecipe handles POST /api/v1/chef/recipe
func (h *ChefHandlers) GenerateRecipe(w http.ResponseWriter, r *http.Request) {
	var req GenerateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Recipe generation request",
		zap.Int("selected_items", len(req.SelectedItemIDs)),
		zap.Int("servings", req.Servings),
	)

	generated, err := h.chefService.GenerateRecipe(r.Context(), inbound.GenerateRecipeCommand{
		SelectedItemIDs: req.SelectedItemIDs,
		Servings:        req.Servings,
		MaxCookTime:     req.MaxCookTime,
		Difficulty:      req.Difficulty,
		Dietary:         req.Dietary,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    generated,
		Message: "Recipe generated successfully",
	})
}

// GenerateMenu handles POST /api/v1/chef/menu
func (h *ChefHandlers) GenerateMenu(w http.ResponseWriter, r *http.Request) {
	var req GenerateMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Menu generation request",
		zap.Int("guest_count", req.GuestCount),
		zap.String("budget", req.Budget),
	)

	menu, err := h.chefService.GenerateMenu(r.Context(), inbound.GenerateMenuCommand{
		GuestCount: req.GuestCount,
		Budget:     req.Budget,
		City:       req.City,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    menu,
		Message: "Menu generated successfully",
	})
}

// GenerateMealPlan handles POST /api/v1/chef/plan
func (h *ChefHandlers) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req GenerateMealPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Meal plan request",
		zap.Int("days", req.Days),
		zap.Strings("slots", req.Slots),
	)

	plan, err := h.chefService.GenerateMealPlan(r.Context(), inbound.GenerateMealPlanCommand{
		Days:      req.Days,
		Slots:     req.Slots,
		StartDate: req.StartDate,
		Servings:  req.Servings,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plan,
		Message: "Meal plan generated",
	})
}

// ScanFridge handles POST /api/v1/chef/scan
func (h *ChefHandlers) ScanFridge(w http.ResponseWriter, r *http.Request) {
	var req ScanFridgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recognized, err := h.chefService.ScanFridge(r.Context(), inbound.ScanFridgeCommand{
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recognized,
		Message: "Fridge photo analyzed",
	})
}

// Chat handles POST /api/v1/chef/chat
func (h *ChefHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	reply, err := h.chefService.Chat(r.Context(), inbound.ChatCommand{
		Message: req.Message,
		History: req.History,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"reply": reply},
	})
}
