package chef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/pkg/errors"
)

func TestParseRecipeResponse_FullPayload(t *testing.T) {
	raw := `Here is your recipe:
{
  "title": "Плов",
  "description": "Rice with chicken and carrots",
  "cookTime": 55,
  "servings": 6,
  "difficulty": "hard",
  "ingredients": [
    {"name": "Rice", "amount": "400", "unit": "g", "available": false},
    {"name": "Chicken", "amount": 500, "unit": "g", "available": true}
  ],
  "instructions": ["Fry the chicken", "Add rice and water"],
  "usesExpiringProducts": ["Chicken"]
}`

	rec, err := parseRecipeResponse(raw, 2, []string{"Chicken", "Carrots"})

	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Плов", rec.Title)
	assert.Equal(t, 55, rec.CookTime)
	assert.Equal(t, 6, rec.Servings)
	assert.Equal(t, recipe.DifficultyHard, rec.Difficulty)
	require.Len(t, rec.Ingredients, 2)
	assert.Equal(t, "400", rec.Ingredients[0].Amount)
	assert.Equal(t, "500", rec.Ingredients[1].Amount)
	assert.True(t, rec.Ingredients[1].Available)
	assert.Equal(t, []string{"Fry the chicken", "Add rice and water"}, rec.Instructions)
	assert.Equal(t, []string{"Chicken"}, rec.UsesExpiringProducts)
	assert.False(t, rec.GeneratedAt.IsZero())
}

func TestParseRecipeResponse_AppliesDefaults(t *testing.T) {
	rec, err := parseRecipeResponse(`{"title": "Toast"}`, 0, nil)

	require.NoError(t, err)
	assert.Equal(t, defaultCookTimeMinutes, rec.CookTime)
	assert.Equal(t, defaultServings, rec.Servings)
	assert.Equal(t, recipe.DifficultyMedium, rec.Difficulty)
	assert.Empty(t, rec.Ingredients)
	assert.NotNil(t, rec.Instructions)
	assert.Empty(t, rec.Instructions)
	assert.NotNil(t, rec.UsesExpiringProducts)
	assert.Empty(t, rec.UsesExpiringProducts)
}

func TestParseRecipeResponse_NullScalarsFallBack(t *testing.T) {
	raw := `{"title": "Soup", "cookTime": null, "servings": null, "difficulty": null}`

	rec, err := parseRecipeResponse(raw, 3, nil)

	require.NoError(t, err)
	assert.Equal(t, defaultCookTimeMinutes, rec.CookTime)
	assert.Equal(t, 3, rec.Servings, "requested servings fill in when the reply has none")
	assert.Equal(t, recipe.DifficultyMedium, rec.Difficulty)
}

func TestParseRecipeResponse_PayloadServingsWinOverRequest(t *testing.T) {
	rec, err := parseRecipeResponse(`{"title": "Stew", "servings": 8}`, 2, nil)

	require.NoError(t, err)
	assert.Equal(t, 8, rec.Servings)
}

func TestParseRecipeResponse_OmittedExpiringListUsesFallback(t *testing.T) {
	fallback := []string{"Milk", "Творог"}

	rec, err := parseRecipeResponse(`{"title": "Сырники"}`, 0, fallback)

	require.NoError(t, err)
	assert.Equal(t, fallback, rec.UsesExpiringProducts)

	// The recipe owns its copy, mutating it must not touch the caller's slice
	rec.UsesExpiringProducts[0] = "changed"
	assert.Equal(t, "Milk", fallback[0])
}

func TestParseRecipeResponse_EmptyExpiringListStaysEmpty(t *testing.T) {
	rec, err := parseRecipeResponse(`{"title": "Salad", "usesExpiringProducts": []}`, 0, []string{"Milk"})

	require.NoError(t, err)
	assert.Empty(t, rec.UsesExpiringProducts, "an explicit empty list is an answer, not an omission")
}

func TestParseRecipeResponse_SkipsUnnamedIngredients(t *testing.T) {
	raw := `{"title": "Salad", "ingredients": [{"name": "", "amount": "1"}, {"name": "Tomato"}]}`

	rec, err := parseRecipeResponse(raw, 0, nil)

	require.NoError(t, err)
	require.Len(t, rec.Ingredients, 1)
	assert.Equal(t, "Tomato", rec.Ingredients[0].Name)
}

func TestParseRecipeResponse_NoJSON(t *testing.T) {
	_, err := parseRecipeResponse("Sorry, I cannot help with that.", 0, nil)

	require.Error(t, err)
	assert.Equal(t, errors.CodeGenerationParse, errors.GetCode(err))
	assert.True(t, errors.IsRetryable(err))
}

func TestParseRecipeResponse_MalformedJSON(t *testing.T) {
	_, err := parseRecipeResponse(`{"title": "Broken", "servings": }`, 0, nil)

	require.Error(t, err)
	assert.Equal(t, errors.CodeGenerationParse, errors.GetCode(err))
}

func TestParseRecipeResponse_MissingTitle(t *testing.T) {
	_, err := parseRecipeResponse(`{"description": "a dish without a name"}`, 0, nil)

	require.Error(t, err)
	assert.Equal(t, errors.CodeGenerationParse, errors.GetCode(err))
}

func TestParseMenuResponse_FullPayload(t *testing.T) {
	raw := `{
  "appetizers": [{"name": "Брускетта", "description": "Tomato on toast", "cost": 450}],
  "mains": [{"name": "Roast duck", "cost": 2500}],
  "desserts": [{"name": "Tiramisu", "cost": 600}],
  "beverages": [{"name": "Lemonade", "cost": 350}],
  "totalCost": 4100,
  "perPersonCost": 1025,
  "shoppingList": [
    {"name": "Duck", "quantity": "2", "unit": "kg", "category": "meat"},
    {"name": "Mascarpone", "quantity": 1, "unit": "pack", "category": "dairy"}
  ]
}`

	menu, err := parseMenuResponse(raw, 4, recipe.BudgetStandard, "Novosibirsk")

	require.NoError(t, err)
	assert.NotEmpty(t, menu.ID)
	assert.Equal(t, 4, menu.GuestCount)
	assert.Equal(t, recipe.BudgetStandard, menu.Budget)
	assert.Equal(t, "Novosibirsk", menu.City)
	assert.Len(t, menu.Appetizers, 1)
	assert.Len(t, menu.Mains, 1)
	assert.Len(t, menu.Desserts, 1)
	assert.Len(t, menu.Beverages, 1)
	assert.Equal(t, 4100.0, menu.TotalCost)
	assert.Equal(t, 1025.0, menu.PerPersonCost)
	require.Len(t, menu.ShoppingList, 2)
	assert.Equal(t, "1", menu.ShoppingList[1].Quantity)
}

func TestParseMenuResponse_DerivesCostsWhenOmitted(t *testing.T) {
	raw := `{
  "appetizers": [{"name": "Salad", "cost": 300}],
  "mains": [{"name": "Pasta", "cost": 900}]
}`

	menu, err := parseMenuResponse(raw, 3, recipe.BudgetEconomy, "")

	require.NoError(t, err)
	assert.Equal(t, 1200.0, menu.TotalCost, "total falls back to the dish sum")
	assert.Equal(t, 400.0, menu.PerPersonCost, "per-person derives from total / guests")
}

func TestParseMenuResponse_ShoppingItemsGetFreshIDs(t *testing.T) {
	raw := `{
  "mains": [{"name": "Plov", "cost": 1000}],
  "shoppingList": [
    {"name": "Rice", "category": "grains"},
    {"name": "Carrots", "category": "no-such-category"}
  ]
}`

	menu, err := parseMenuResponse(raw, 2, recipe.BudgetStandard, "")

	require.NoError(t, err)
	require.Len(t, menu.ShoppingList, 2)
	assert.NotEmpty(t, menu.ShoppingList[0].ID)
	assert.NotEmpty(t, menu.ShoppingList[1].ID)
	assert.NotEqual(t, menu.ShoppingList[0].ID, menu.ShoppingList[1].ID)
	assert.Equal(t, "other", string(menu.ShoppingList[1].Category))
}

func TestParseMenuResponse_NoDishes(t *testing.T) {
	_, err := parseMenuResponse(`{"appetizers": [], "mains": []}`, 4, recipe.BudgetStandard, "")

	require.Error(t, err)
	assert.Equal(t, errors.CodeGenerationParse, errors.GetCode(err))
}

func TestParseScanResponse_Array(t *testing.T) {
	raw := `I can see the following products:
[
  {"name": "Milk", "quantity": "1", "unit": "l", "category": "dairy", "confidence": 0.92},
  {"name": "Leftover soup", "quantity": 1, "unit": "bowl", "category": "mystery", "confidence": 1.7},
  {"name": "", "category": "dairy"}
]`

	items, err := parseScanResponse(raw)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "dairy", items[0].Category)
	assert.Equal(t, 0.92, items[0].Confidence)
	assert.Equal(t, "other", items[1].Category, "unknown categories coerce to other")
	assert.Equal(t, 1.0, items[1].Confidence, "confidence clamps to [0, 1]")
}

func TestParseScanResponse_EmptyArray(t *testing.T) {
	items, err := parseScanResponse("Nothing recognizable here: []")

	require.NoError(t, err)
	assert.Empty(t, items, "an empty fridge is a valid answer")
}

func TestParseScanResponse_MissingConfidence(t *testing.T) {
	items, err := parseScanResponse(`[{"name": "Eggs", "category": "other"}]`)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].Confidence)
}

func TestParseScanResponse_NoPayload(t *testing.T) {
	_, err := parseScanResponse("The photo is too dark to identify anything.")

	require.Error(t, err)
	assert.Equal(t, errors.CodeGenerationParse, errors.GetCode(err))
	assert.True(t, errors.IsRetryable(err))
}
