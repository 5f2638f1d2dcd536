// Package chef provides the application layer for recipe generation.
// It builds the generation requests, parses the collaborator's replies and
// runs the explicit follow-ups (history, impact counters) after a success.
package chef

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shared"
	"github.com/fridgewise/core/internal/domain/stats"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
)

// chatHistoryLimit caps how many prior turns travel with a chat request
const chatHistoryLimit = 20

// Config carries the impact accounting constants applied after a recipe
// generates successfully
type Config struct {
	SavingsPerItem     float64
	WastePerItemGrams  float64
	TimeSavedPerRecipe float64
}

// DefaultConfig returns the impact accounting defaults
func DefaultConfig() Config {
	return Config{
		SavingsPerItem:     150,
		WastePerItemGrams:  200,
		TimeSavedPerRecipe: 15,
	}
}

// Service implements the generation use cases
type Service struct {
	generator outbound.GenerationClient
	inventory inbound.InventoryService
	library   inbound.LibraryService
	stats     inbound.StatsService
	cfg       Config
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates the chef service
func NewService(
	generator outbound.GenerationClient,
	inventorySvc inbound.InventoryService,
	librarySvc inbound.LibraryService,
	statsSvc inbound.StatsService,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		generator: generator,
		inventory: inventorySvc,
		library:   librarySvc,
		stats:     statsSvc,
		cfg:       cfg,
		validate:  validator.New(),
		logger:    logger.Named("chef-service"),
		now:       time.Now,
	}
}

// GenerateRecipe requests one recipe built around the current inventory.
// Items the user selected explicitly are prioritized verbatim; otherwise
// every item not in the fresh tier is flagged for the collaborator to use
// up first.
func (s *Service) GenerateRecipe(ctx context.Context, cmd inbound.GenerateRecipeCommand) (recipe.Recipe, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return recipe.Recipe{}, errors.NewValidationError(err.Error())
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return recipe.Recipe{}, err
	}

	now := s.now()
	prioritized := s.selectPrioritized(items, cmd.SelectedItemIDs, now)

	s.logger.Info("Generating recipe",
		zap.Int("inventory_items", len(items)),
		zap.Int("prioritized", len(prioritized)),
		zap.Bool("explicit_selection", len(cmd.SelectedItemIDs) > 0),
	)

	servings := cmd.Servings
	if servings <= 0 {
		servings = defaultServings
	}

	prompt := buildRecipePrompt(items, prioritized, cmd, servings, now)
	raw, err := s.generator.Complete(ctx, recipeSystemPrompt, prompt)
	if err != nil {
		return recipe.Recipe{}, err
	}

	rec, err := parseRecipeResponse(raw, cmd.Servings, prioritized)
	if err != nil {
		return recipe.Recipe{}, err
	}

	s.recordGenerated(ctx, rec)

	s.logger.Info("Recipe generated",
		zap.String("recipe_id", rec.ID),
		zap.String("title", rec.Title),
		zap.Int("expiring_used", len(rec.UsesExpiringProducts)),
	)

	return rec, nil
}

// GenerateMenu requests a full guest menu for an occasion
func (s *Service) GenerateMenu(ctx context.Context, cmd inbound.GenerateMenuCommand) (recipe.GuestMenu, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return recipe.GuestMenu{}, errors.NewValidationError(err.Error())
	}

	budget := recipe.ParseBudgetTier(cmd.Budget)

	s.logger.Info("Generating guest menu",
		zap.Int("guests", cmd.GuestCount),
		zap.String("budget", string(budget)),
		zap.String("city", cmd.City),
	)

	raw, err := s.generator.Complete(ctx, menuSystemPrompt, buildMenuPrompt(cmd, budget))
	if err != nil {
		return recipe.GuestMenu{}, err
	}

	menu, err := parseMenuResponse(raw, cmd.GuestCount, budget, cmd.City)
	if err != nil {
		return recipe.GuestMenu{}, err
	}

	s.logger.Info("Guest menu generated",
		zap.String("menu_id", menu.ID),
		zap.Int("dishes", len(menu.Dishes())),
		zap.Float64("total_cost", menu.TotalCost),
	)

	return menu, nil
}

// GenerateMealPlan requests one recipe per day and slot, strictly in
// sequence. A failed slot records its error on the plan entry and the
// remaining slots still generate; only cancellation and a missing
// credential stop the run early.
func (s *Service) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (recipe.MealPlan, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return recipe.MealPlan{}, errors.NewValidationError(err.Error())
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return recipe.MealPlan{}, err
	}

	now := s.now()
	prioritized := s.selectPrioritized(items, nil, now)

	slots := parseSlots(cmd.Slots)
	start := cmd.StartDate
	if start.IsZero() {
		start = now
	}
	servings := cmd.Servings
	if servings <= 0 {
		servings = defaultServings
	}

	s.logger.Info("Generating meal plan",
		zap.Int("days", cmd.Days),
		zap.Int("slots_per_day", len(slots)),
	)

	plan := recipe.MealPlan{
		ID:          shared.NewID(),
		StartDate:   start,
		Days:        cmd.Days,
		GeneratedAt: now,
	}

	var usedTitles []string
	for day := 0; day < cmd.Days; day++ {
		date := shared.AddDays(start, day)
		for _, slot := range slots {
			if err := ctx.Err(); err != nil {
				return plan, errors.Wrap(err, "meal plan generation canceled")
			}

			entry := recipe.PlanEntry{Date: date, Slot: slot}

			prompt := buildPlanSlotPrompt(items, prioritized, slot, date, servings, usedTitles, now)
			raw, genErr := s.generator.Complete(ctx, recipeSystemPrompt, prompt)
			if genErr != nil {
				if errors.Is(genErr, errors.CodeConfiguration) {
					return plan, genErr
				}
				s.logger.Warn("Meal plan slot failed",
					zap.Int("day", day),
					zap.String("slot", string(slot)),
					zap.Error(genErr),
				)
				entry.Error = genErr.Error()
				plan.Entries = append(plan.Entries, entry)
				continue
			}

			rec, parseErr := parseRecipeResponse(raw, cmd.Servings, prioritized)
			if parseErr != nil {
				s.logger.Warn("Meal plan slot unparseable",
					zap.Int("day", day),
					zap.String("slot", string(slot)),
					zap.Error(parseErr),
				)
				entry.Error = parseErr.Error()
				plan.Entries = append(plan.Entries, entry)
				continue
			}

			entry.Recipe = &rec
			plan.Entries = append(plan.Entries, entry)
			usedTitles = append(usedTitles, rec.Title)
			s.recordGenerated(ctx, rec)
		}
	}

	s.logger.Info("Meal plan generated",
		zap.String("plan_id", plan.ID),
		zap.Int("entries", len(plan.Entries)),
		zap.Int("failed", len(plan.FailedEntries())),
	)

	return plan, nil
}

// ScanFridge sends one photo to the vision collaborator and returns the
// recognized products. Nothing is persisted here; the user confirms the
// list first and ImportScanned stores it.
func (s *Service) ScanFridge(ctx context.Context, cmd inbound.ScanFridgeCommand) ([]inbound.ScannedItem, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	raw, err := s.generator.CompleteVision(ctx, scanSystemPrompt, scanUserPrompt, stripDataURL(cmd.ImageBase64))
	if err != nil {
		return nil, err
	}

	scanned, err := parseScanResponse(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fridge scan parsed", zap.Int("recognized", len(scanned)))

	return scanned, nil
}

// Chat answers one free-form cooking question grounded in the current
// inventory. Only the last turns of the conversation travel with the
// request.
func (s *Service) Chat(ctx context.Context, cmd inbound.ChatCommand) (string, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return "", errors.NewValidationError(err.Error())
	}

	// A failed inventory read degrades the answer, it should not block it
	items, err := s.inventory.List(ctx)
	if err != nil {
		s.logger.Warn("Chat proceeding without inventory context", zap.Error(err))
		items = nil
	}

	history := cmd.History
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}

	turns := make([]outbound.ChatTurn, 0, len(history)+1)
	for _, msg := range history {
		turns = append(turns, outbound.ChatTurn{Role: msg.Role, Content: msg.Content})
	}
	turns = append(turns, outbound.ChatTurn{Role: outbound.RoleUser, Content: cmd.Message})

	reply, err := s.generator.Chat(ctx, buildChatSystemPrompt(items, s.now()), turns)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(reply), nil
}

// selectPrioritized returns the names to flag as use-first. An explicit id
// selection wins verbatim, in the order the user picked; the automatic
// fallback takes every non-fresh item, most urgent first.
func (s *Service) selectPrioritized(items []inventory.Item, selectedIDs []string, now time.Time) []string {
	if len(selectedIDs) > 0 {
		byID := make(map[string]inventory.Item, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}
		var names []string
		for _, id := range selectedIDs {
			if item, ok := byID[id]; ok {
				names = append(names, item.Name)
			}
		}
		return names
	}

	var names []string
	for _, item := range inventory.SortByUrgencyAt(items, now) {
		if item.Urgency(now) != inventory.TierFresh {
			names = append(names, item.Name)
		}
	}
	return names
}

// recordGenerated runs the post-generation follow-ups. Failures here are
// logged and swallowed: the user already has the recipe on screen.
func (s *Service) recordGenerated(ctx context.Context, rec recipe.Recipe) {
	if _, err := s.library.AddToHistory(ctx, rec); err != nil {
		s.logger.Error("Failed to record recipe in history",
			zap.String("recipe_id", rec.ID),
			zap.Error(err),
		)
	}

	increments := map[stats.Key]float64{
		stats.KeyRecipesGenerated: 1,
		stats.KeyTimeSavedMinutes: s.cfg.TimeSavedPerRecipe,
	}
	if used := len(rec.UsesExpiringProducts); used > 0 {
		increments[stats.KeyMoneySaved] = float64(used) * s.cfg.SavingsPerItem
		increments[stats.KeyWastePrevented] = float64(used) * s.cfg.WastePerItemGrams
	}
	for key, amount := range increments {
		if _, err := s.stats.Increment(ctx, key, amount); err != nil {
			s.logger.Error("Failed to update impact statistics",
				zap.String("key", string(key)),
				zap.Error(err),
			)
		}
	}
}

// parseSlots maps the requested slot names, falling back to all three
// meals when none are given
func parseSlots(raw []string) []recipe.MealSlot {
	if len(raw) == 0 {
		return recipe.AllSlots()
	}
	slots := make([]recipe.MealSlot, 0, len(raw))
	for _, r := range raw {
		slots = append(slots, recipe.ParseMealSlot(r))
	}
	return slots
}

// stripDataURL reduces a data URL to its bare base64 payload; the client
// re-wraps it for the wire
func stripDataURL(image string) string {
	if !strings.HasPrefix(image, "data:") {
		return image
	}
	if idx := strings.Index(image, "base64,"); idx >= 0 {
		return image[idx+len("base64,"):]
	}
	return image
}
