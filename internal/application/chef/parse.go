package chef

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shared"
	"github.com/fridgewise/core/internal/domain/shopping"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/pkg/errors"
)

// Scalar defaults applied when a reply carries a field as null or omits
// it. Only total parse failure is fatal; a partially filled reply still
// becomes a usable recipe.
const (
	defaultServings        = 4
	defaultCookTimeMinutes = 30
)

// flexString tolerates numeric JSON where free text is expected, since
// generation output flips between "quantity": "2" and "quantity": 2
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// Reply payload shapes. Pointer scalars distinguish "absent or null"
// from legitimate zero values.

type ingredientPayload struct {
	Name      string     `json:"name"`
	Amount    flexString `json:"amount"`
	Unit      string     `json:"unit"`
	Available bool       `json:"available"`
}

type recipePayload struct {
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	CookTime             *int                `json:"cookTime"`
	Servings             *int                `json:"servings"`
	Difficulty           string              `json:"difficulty"`
	Ingredients          []ingredientPayload `json:"ingredients"`
	Instructions         []string            `json:"instructions"`
	UsesExpiringProducts []string            `json:"usesExpiringProducts"`
}

// parseRecipeResponse turns a raw generation reply into a Recipe.
// requestedServings seeds the servings default; fallbackExpiring fills
// usesExpiringProducts when the reply omits it, so the field always
// reflects the names offered at request time.
func parseRecipeResponse(raw string, requestedServings int, fallbackExpiring []string) (recipe.Recipe, error) {
	span, ok := extractJSONObject(raw)
	if !ok {
		return recipe.Recipe{}, errors.NewGenerationParseError("reply contained no JSON object", nil)
	}

	var payload recipePayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return recipe.Recipe{}, errors.NewGenerationParseError("reply JSON was malformed", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return recipe.Recipe{}, errors.NewGenerationParseError("reply was missing the recipe title", nil)
	}

	servings := requestedServings
	if servings <= 0 {
		servings = defaultServings
	}
	if payload.Servings != nil && *payload.Servings > 0 {
		servings = *payload.Servings
	}

	cookTime := defaultCookTimeMinutes
	if payload.CookTime != nil && *payload.CookTime > 0 {
		cookTime = *payload.CookTime
	}

	ingredients := make([]recipe.Ingredient, 0, len(payload.Ingredients))
	for _, ing := range payload.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		ingredients = append(ingredients, recipe.Ingredient{
			Name:      ing.Name,
			Amount:    string(ing.Amount),
			Unit:      ing.Unit,
			Available: ing.Available,
		})
	}

	instructions := payload.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	usesExpiring := payload.UsesExpiringProducts
	if usesExpiring == nil {
		usesExpiring = append([]string{}, fallbackExpiring...)
	}

	return recipe.Recipe{
		ID:                   shared.NewID(),
		Title:                payload.Title,
		Description:          payload.Description,
		CookTime:             cookTime,
		Servings:             servings,
		Difficulty:           recipe.ParseDifficulty(payload.Difficulty),
		Ingredients:          ingredients,
		Instructions:         instructions,
		UsesExpiringProducts: usesExpiring,
		GeneratedAt:          time.Now(),
	}, nil
}

type dishPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
}

type menuShoppingPayload struct {
	Name     string     `json:"name"`
	Quantity flexString `json:"quantity"`
	Unit     string     `json:"unit"`
	Category string     `json:"category"`
}

type menuPayload struct {
	Appetizers    []dishPayload         `json:"appetizers"`
	Mains         []dishPayload         `json:"mains"`
	Desserts      []dishPayload         `json:"desserts"`
	Beverages     []dishPayload         `json:"beverages"`
	TotalCost     *float64              `json:"totalCost"`
	PerPersonCost *float64              `json:"perPersonCost"`
	ShoppingList  []menuShoppingPayload `json:"shoppingList"`
}

// parseMenuResponse turns a raw reply into a GuestMenu. Shopping entries
// get synthesized ids; per-person cost is derived from the total when the
// reply omits it.
func parseMenuResponse(raw string, guestCount int, budget recipe.BudgetTier, city string) (recipe.GuestMenu, error) {
	span, ok := extractJSONObject(raw)
	if !ok {
		return recipe.GuestMenu{}, errors.NewGenerationParseError("reply contained no JSON object", nil)
	}

	var payload menuPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return recipe.GuestMenu{}, errors.NewGenerationParseError("reply JSON was malformed", err)
	}

	menu := recipe.GuestMenu{
		ID:          shared.NewID(),
		GuestCount:  guestCount,
		Budget:      budget,
		City:        city,
		Appetizers:  mapDishes(payload.Appetizers),
		Mains:       mapDishes(payload.Mains),
		Desserts:    mapDishes(payload.Desserts),
		Beverages:   mapDishes(payload.Beverages),
		GeneratedAt: time.Now(),
	}
	if len(menu.Dishes()) == 0 {
		return recipe.GuestMenu{}, errors.NewGenerationParseError("reply contained no menu dishes", nil)
	}

	if payload.TotalCost != nil && *payload.TotalCost > 0 {
		menu.TotalCost = *payload.TotalCost
	} else {
		for _, dish := range menu.Dishes() {
			menu.TotalCost += dish.Cost
		}
	}

	if payload.PerPersonCost != nil && *payload.PerPersonCost > 0 {
		menu.PerPersonCost = *payload.PerPersonCost
	} else if guestCount > 0 {
		menu.PerPersonCost = menu.TotalCost / float64(guestCount)
	}

	menu.ShoppingList = make([]shopping.Item, 0, len(payload.ShoppingList))
	for _, entry := range payload.ShoppingList {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}
		menu.ShoppingList = append(menu.ShoppingList, shopping.NewItem(
			entry.Name,
			string(entry.Quantity),
			entry.Unit,
			inventory.ParseCategory(entry.Category),
			"",
		))
	}

	return menu, nil
}

func mapDishes(payloads []dishPayload) []recipe.MenuDish {
	dishes := make([]recipe.MenuDish, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		dish := recipe.MenuDish{Name: p.Name, Description: p.Description}
		if p.Cost != nil && *p.Cost > 0 {
			dish.Cost = *p.Cost
		}
		dishes = append(dishes, dish)
	}
	return dishes
}

type scannedPayload struct {
	Name       string     `json:"name"`
	Quantity   flexString `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	Confidence *float64   `json:"confidence"`
}

// parseScanResponse turns a raw vision reply into scan candidates. The
// reply is expected to be a JSON array; some models wrap it in an object
// under "products", which is tolerated. An empty array is a valid "saw
// nothing" result, not an error.
func parseScanResponse(raw string) ([]inbound.ScannedItem, error) {
	var payloads []scannedPayload

	if span, ok := extractJSONArray(raw); ok {
		if err := json.Unmarshal([]byte(span), &payloads); err != nil {
			return nil, errors.NewGenerationParseError("reply JSON array was malformed", err)
		}
	} else if span, ok := extractJSONObject(raw); ok {
		var wrapped struct {
			Products []scannedPayload `json:"products"`
		}
		if err := json.Unmarshal([]byte(span), &wrapped); err != nil {
			return nil, errors.NewGenerationParseError("reply JSON was malformed", err)
		}
		payloads = wrapped.Products
	} else {
		return nil, errors.NewGenerationParseError("reply contained no JSON array", nil)
	}

	items := make([]inbound.ScannedItem, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		confidence := 0.0
		if p.Confidence != nil {
			confidence = *p.Confidence
			if confidence < 0 {
				confidence = 0
			}
			if confidence > 1 {
				confidence = 1
			}
		}
		items = append(items, inbound.ScannedItem{
			Name:       p.Name,
			Quantity:   string(p.Quantity),
			Unit:       p.Unit,
			Category:   string(inventory.ParseCategory(p.Category)),
			Confidence: confidence,
		})
	}

	return items, nil
}
