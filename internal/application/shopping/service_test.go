package shopping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shopping"
	"github.com/fridgewise/core/internal/infrastructure/persistence/memory"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/pkg/errors"
)

func newTestShoppingService(t *testing.T) *Service {
	t.Helper()
	return NewService(memory.NewStore(), zaptest.NewLogger(t))
}

func TestAddItem_AppendsInOrder(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice", Quantity: "1", Unit: "kg", Category: "grains"})
	require.NoError(t, err)
	items, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Молоко", Category: "dairy"})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Rice", items[0].Name)
	assert.Equal(t, "Молоко", items[1].Name)
	assert.Equal(t, inventory.CategoryGrains, items[0].Category)
	assert.False(t, items[0].Checked)
	assert.NotEmpty(t, items[0].ID)
}

func TestAddItem_RequiresName(t *testing.T) {
	svc := newTestShoppingService(t)

	_, err := svc.AddItem(context.Background(), inbound.AddShoppingItemCommand{Quantity: "2"})

	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestAddMissingFromRecipe_AddsOnlyUnavailable(t *testing.T) {
	svc := newTestShoppingService(t)

	r := recipe.Recipe{
		ID:    "r-1",
		Title: "Плов",
		Ingredients: []recipe.Ingredient{
			{Name: "Rice", Amount: "400", Unit: "g", Available: false},
			{Name: "Chicken", Amount: "500", Unit: "g", Available: true},
			{Name: "", Available: false},
			{Name: "Carrots", Amount: "2", Available: false},
		},
	}

	items, err := svc.AddMissingFromRecipe(context.Background(), r)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Rice", items[0].Name)
	assert.Equal(t, "Carrots", items[1].Name)
	assert.Equal(t, "Плов", items[0].RecipeName, "entries remember which recipe asked for them")
}

func TestAddMissingFromRecipe_NothingMissingChangesNothing(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)

	r := recipe.Recipe{ID: "r-1", Title: "Toast", Ingredients: []recipe.Ingredient{{Name: "Bread", Available: true}}}
	items, err := svc.AddMissingFromRecipe(ctx, r)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddMissingFromRecipe_RepeatAddsDuplicateEntries(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	r := recipe.Recipe{ID: "r-1", Title: "Плов", Ingredients: []recipe.Ingredient{{Name: "Rice", Available: false}}}

	_, err := svc.AddMissingFromRecipe(ctx, r)
	require.NoError(t, err)
	items, err := svc.AddMissingFromRecipe(ctx, r)
	require.NoError(t, err)

	require.Len(t, items, 2, "entries are never merged by name")
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestImportItems_AppendsAndFillsMissingIDs(t *testing.T) {
	svc := newTestShoppingService(t)

	items, err := svc.ImportItems(context.Background(), []shopping.Item{
		{ID: "keep-me", Name: "Duck", Quantity: "2", Unit: "kg", Category: inventory.CategoryMeat},
		{Name: "Mascarpone", Category: inventory.CategoryDairy},
		{Name: "   "},
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "keep-me", items[0].ID)
	assert.NotEmpty(t, items[1].ID)
}

func TestToggleItem_FlipsAndPersists(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	items, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)
	id := items[0].ID

	items, err = svc.ToggleItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, items[0].Checked)

	items, err = svc.ToggleItem(ctx, id)
	require.NoError(t, err)
	assert.False(t, items[0].Checked, "toggling twice lands back where it started")

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.False(t, listed[0].Checked)
}

func TestToggleItem_AbsentIDChangesNothing(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)

	items, err := svc.ToggleItem(ctx, "no-such-id")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Checked)
}

func TestDeleteItem_RemovesAndToleratesAbsent(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	items, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)
	id := items[0].ID

	remaining, err := svc.DeleteItem(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	again, err := svc.DeleteItem(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestClearChecked_SweepsOnlyCheckedEntries(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)
	items, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Milk"})
	require.NoError(t, err)
	items, err = svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Bread"})
	require.NoError(t, err)

	_, err = svc.ToggleItem(ctx, items[0].ID)
	require.NoError(t, err)
	_, err = svc.ToggleItem(ctx, items[2].ID)
	require.NoError(t, err)

	remaining, err := svc.ClearChecked(ctx)

	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Milk", remaining[0].Name)
}

func TestClearChecked_NothingCheckedChangesNothing(t *testing.T) {
	svc := newTestShoppingService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddShoppingItemCommand{Name: "Rice"})
	require.NoError(t, err)

	remaining, err := svc.ClearChecked(ctx)

	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestList_EmptyStoreReadsEmpty(t *testing.T) {
	svc := newTestShoppingService(t)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
