package chef

import (
	"fmt"
	"strings"
	"time"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/ports/inbound"
)

// recipeSystemPrompt fixes the reply contract for recipe generation. The
// schema keys match the Recipe JSON shape one to one.
const recipeSystemPrompt = `You are a practical home chef who helps people cook what they already have and waste less food.

CRITICAL: You must respond with ONLY a valid JSON object in the exact format shown below. Do not include any explanatory text, markdown formatting, or other content outside the JSON.

Required JSON format:
{
  "title": "Recipe name",
  "description": "One or two sentences about the dish",
  "cookTime": 30,
  "servings": 4,
  "difficulty": "easy|medium|hard",
  "ingredients": [
    {
      "name": "ingredient name",
      "amount": "200",
      "unit": "g",
      "available": true
    }
  ],
  "instructions": [
    "Step 1: detailed instruction",
    "Step 2: next step"
  ],
  "usesExpiringProducts": ["product name"]
}

Set "available" to true only for ingredients taken from the provided inventory. In "usesExpiringProducts" list only names from the prioritized products the recipe actually uses.

Remember: Respond with ONLY valid JSON. No additional text or formatting.`

// buildRecipePrompt renders the user prompt for one recipe request
func buildRecipePrompt(items []inventory.Item, prioritized []string, cmd inbound.GenerateRecipeCommand, servings int, now time.Time) string {
	var b strings.Builder
	b.WriteString("Create one recipe from what is in my fridge.\n")

	if len(items) > 0 {
		b.WriteString("\nAvailable products:\n")
		for _, item := range items {
			b.WriteString(formatItemLine(item, now))
		}
	}

	if len(prioritized) > 0 {
		fmt.Fprintf(&b, "\nPrioritize using these products before they spoil: %s.\n", strings.Join(prioritized, ", "))
	}

	fmt.Fprintf(&b, "\nServings: %d.\n", servings)
	if cmd.MaxCookTime > 0 {
		fmt.Fprintf(&b, "Maximum cooking time: %d minutes.\n", cmd.MaxCookTime)
	}
	if cmd.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s.\n", recipe.ParseDifficulty(cmd.Difficulty))
	}
	if len(cmd.Dietary) > 0 {
		fmt.Fprintf(&b, "Dietary notes: %s.\n", strings.Join(cmd.Dietary, ", "))
	}

	return b.String()
}

// buildPlanSlotPrompt renders the user prompt for one meal-plan slot.
// Titles already generated in this plan are listed so the week does not
// repeat itself.
func buildPlanSlotPrompt(items []inventory.Item, prioritized []string, slot recipe.MealSlot, date time.Time, servings int, usedTitles []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create one %s recipe for %s.\n", slot, date.Format("Monday, January 2"))

	if len(items) > 0 {
		b.WriteString("\nAvailable products:\n")
		for _, item := range items {
			b.WriteString(formatItemLine(item, now))
		}
	}
	if len(prioritized) > 0 {
		fmt.Fprintf(&b, "\nPrioritize using these products before they spoil: %s.\n", strings.Join(prioritized, ", "))
	}

	fmt.Fprintf(&b, "\nServings: %d.\n", servings)
	if len(usedTitles) > 0 {
		fmt.Fprintf(&b, "Do not repeat these dishes already planned: %s.\n", strings.Join(usedTitles, ", "))
	}

	return b.String()
}

// menuSystemPrompt fixes the reply contract for guest menus
const menuSystemPrompt = `You are a professional caterer planning multi-course menus for home entertaining.

CRITICAL: You must respond with ONLY a valid JSON object in the exact format shown below. Do not include any explanatory text, markdown formatting, or other content outside the JSON.

Required JSON format:
{
  "appetizers": [{"name": "Dish name", "description": "Short description", "cost": 450}],
  "mains": [{"name": "Dish name", "description": "Short description", "cost": 1200}],
  "desserts": [{"name": "Dish name", "description": "Short description", "cost": 400}],
  "beverages": [{"name": "Drink name", "description": "Short description", "cost": 300}],
  "totalCost": 6200,
  "perPersonCost": 1550,
  "shoppingList": [{"name": "product", "quantity": "2", "unit": "kg", "category": "meat"}]
}

Costs are estimated totals in local currency. "category" must be one of: dairy, meat, vegetables, fruits, grains, beverages, condiments, frozen, bakery, other.

Remember: Respond with ONLY valid JSON. No additional text or formatting.`

// buildMenuPrompt renders the user prompt for a guest menu request
func buildMenuPrompt(cmd inbound.GenerateMenuCommand, budget recipe.BudgetTier) string {
	band := recipe.CostBandFor(budget)

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a complete menu for %d guests.\n", cmd.GuestCount)
	fmt.Fprintf(&b, "Budget level: %s, roughly %.0f-%.0f per person.\n", budget, band.Min, band.Max)
	if cmd.City != "" {
		fmt.Fprintf(&b, "We are in %s, prefer products in season and easy to buy locally.\n", cmd.City)
	}
	b.WriteString("Include appetizers, mains, desserts and beverages, plus the full shopping list.\n")

	return b.String()
}

// scanSystemPrompt fixes the reply contract for fridge photo scans
const scanSystemPrompt = `You identify grocery products in refrigerator photos.

CRITICAL: You must respond with ONLY a valid JSON array in the exact format shown below. Do not include any explanatory text, markdown formatting, or other content outside the JSON.

Required JSON format:
[
  {"name": "Milk", "quantity": "1", "unit": "l", "category": "dairy", "confidence": 0.92}
]

"category" must be one of: dairy, meat, vegetables, fruits, grains, beverages, condiments, frozen, bakery, other. "confidence" is your certainty from 0.0 to 1.0. Respond with an empty array [] when no products are recognizable.`

const scanUserPrompt = `List every food product visible in this photo.`

// buildChatSystemPrompt renders the assistant persona, grounding replies
// in what the user actually has on hand
func buildChatSystemPrompt(items []inventory.Item, now time.Time) string {
	var b strings.Builder
	b.WriteString("You are a friendly cooking assistant inside a fridge-management app. ")
	b.WriteString("Answer cooking questions concisely and practically. ")
	b.WriteString("Prefer suggestions that use up products close to their expiry date.\n")

	if len(items) > 0 {
		b.WriteString("\nThe user's fridge currently contains:\n")
		for _, item := range items {
			b.WriteString(formatItemLine(item, now))
		}
	}

	return b.String()
}

func formatItemLine(item inventory.Item, now time.Time) string {
	quantity := strings.TrimSpace(item.Quantity + " " + item.Unit)
	if quantity == "" {
		return fmt.Sprintf("- %s, %s\n", item.Name, inventory.DescribeAt(item.ExpiryDate, now))
	}
	return fmt.Sprintf("- %s (%s), %s\n", item.Name, quantity, inventory.DescribeAt(item.ExpiryDate, now))
}
