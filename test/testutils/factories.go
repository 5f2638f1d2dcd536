// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/fridgewise/core/internal/domain/inventory"
	"github.com/fridgewise/core/internal/domain/recipe"
	"github.com/fridgewise/core/internal/domain/shared"
	"github.com/fridgewise/core/internal/domain/shopping"
)

// ItemBuilder provides a fluent interface for building test inventory items
type ItemBuilder struct {
	faker      *gofakeit.Faker
	name       string
	quantity   string
	unit       string
	category   inventory.Category
	expiryDate time.Time
	addedAt    time.Time
}

// NewItemBuilder creates a new item builder with plausible defaults
func NewItemBuilder() *ItemBuilder {
	faker := gofakeit.New(0)

	return &ItemBuilder{
		faker:      faker,
		name:       faker.Fruit(),
		quantity:   fmt.Sprintf("%d", faker.Number(1, 5)),
		unit:       "pcs",
		category:   inventory.CategoryFruits,
		expiryDate: time.Now().AddDate(0, 0, faker.Number(1, 14)),
		addedAt:    time.Now(),
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

// WithQuantity sets the quantity text
func (b *ItemBuilder) WithQuantity(quantity string) *ItemBuilder {
	b.quantity = quantity
	return b
}

// WithUnit sets the unit
func (b *ItemBuilder) WithUnit(unit string) *ItemBuilder {
	b.unit = unit
	return b
}

// WithCategory sets the category
func (b *ItemBuilder) WithCategory(category inventory.Category) *ItemBuilder {
	b.category = category
	return b
}

// ExpiringInDays sets the expiry date the given number of days out
func (b *ItemBuilder) ExpiringInDays(days int) *ItemBuilder {
	b.expiryDate = time.Now().AddDate(0, 0, days)
	return b
}

// Expired sets the expiry date in the past
func (b *ItemBuilder) Expired() *ItemBuilder {
	b.expiryDate = time.Now().AddDate(0, 0, -2)
	return b
}

// WithExpiryDate sets an explicit expiry date
func (b *ItemBuilder) WithExpiryDate(date time.Time) *ItemBuilder {
	b.expiryDate = date
	return b
}

// Build creates the inventory item
func (b *ItemBuilder) Build() inventory.Item {
	return inventory.Item{
		ID:         shared.NewID(),
		Name:       b.name,
		Quantity:   b.quantity,
		Unit:       b.unit,
		Category:   b.category,
		ExpiryDate: b.expiryDate,
		AddedAt:    b.addedAt,
	}
}

// BuildMany creates multiple items with distinct names
func (b *ItemBuilder) BuildMany(count int) []inventory.Item {
	items := make([]inventory.Item, count)
	for i := 0; i < count; i++ {
		item := b.Build()
		item.Name = fmt.Sprintf("%s %d", b.name, i+1)
		items[i] = item
	}
	return items
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	faker        *gofakeit.Faker
	title        string
	description  string
	cookTime     int
	servings     int
	difficulty   recipe.Difficulty
	ingredients  []recipe.Ingredient
	instructions []string
	usesExpiring []string
	generatedAt  time.Time
}

// NewRecipeBuilder creates a new recipe builder with plausible defaults
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(0)

	return &RecipeBuilder{
		faker:       faker,
		title:       faker.Dinner(),
		description: faker.Sentence(8),
		cookTime:    30,
		servings:    4,
		difficulty:  recipe.DifficultyMedium,
		ingredients: []recipe.Ingredient{
			{Name: faker.Vegetable(), Amount: "200", Unit: "g", Available: true},
			{Name: faker.Fruit(), Amount: "2", Available: false},
		},
		instructions: []string{
			"Prepare the ingredients.",
			"Cook everything together.",
			"Season and serve.",
		},
		generatedAt: time.Now(),
	}
}

// WithTitle sets the recipe title
func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.title = title
	return b
}

// WithCookTime sets the cook time in minutes
func (b *RecipeBuilder) WithCookTime(minutes int) *RecipeBuilder {
	b.cookTime = minutes
	return b
}

// WithServings sets the servings count
func (b *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	b.servings = servings
	return b
}

// WithDifficulty sets the difficulty
func (b *RecipeBuilder) WithDifficulty(difficulty recipe.Difficulty) *RecipeBuilder {
	b.difficulty = difficulty
	return b
}

// WithIngredient appends one ingredient line
func (b *RecipeBuilder) WithIngredient(name, amount, unit string, available bool) *RecipeBuilder {
	b.ingredients = append(b.ingredients, recipe.Ingredient{
		Name:      name,
		Amount:    amount,
		Unit:      unit,
		Available: available,
	})
	return b
}

// WithIngredients replaces the ingredient list
func (b *RecipeBuilder) WithIngredients(ingredients []recipe.Ingredient) *RecipeBuilder {
	b.ingredients = ingredients
	return b
}

// UsingExpiringProducts sets the expiring item names the recipe consumes
func (b *RecipeBuilder) UsingExpiringProducts(names ...string) *RecipeBuilder {
	b.usesExpiring = names
	return b
}

// Build creates the recipe
func (b *RecipeBuilder) Build() recipe.Recipe {
	return recipe.Recipe{
		ID:                   shared.NewID(),
		Title:                b.title,
		Description:          b.description,
		CookTime:             b.cookTime,
		Servings:             b.servings,
		Difficulty:           b.difficulty,
		Ingredients:          b.ingredients,
		Instructions:         b.instructions,
		UsesExpiringProducts: b.usesExpiring,
		GeneratedAt:          b.generatedAt,
	}
}

// BuildMany creates multiple recipes with distinct titles
func (b *RecipeBuilder) BuildMany(count int) []recipe.Recipe {
	recipes := make([]recipe.Recipe, count)
	for i := 0; i < count; i++ {
		rec := b.Build()
		rec.Title = fmt.Sprintf("%s %d", b.title, i+1)
		recipes[i] = rec
	}
	return recipes
}

// ShoppingItemBuilder provides a fluent interface for building test
// shopping list entries
type ShoppingItemBuilder struct {
	faker      *gofakeit.Faker
	name       string
	quantity   string
	unit       string
	category   inventory.Category
	checked    bool
	recipeName string
}

// NewShoppingItemBuilder creates a new shopping item builder
func NewShoppingItemBuilder() *ShoppingItemBuilder {
	faker := gofakeit.New(0)

	return &ShoppingItemBuilder{
		faker:    faker,
		name:     faker.Vegetable(),
		quantity: fmt.Sprintf("%d", faker.Number(1, 3)),
		category: inventory.CategoryVegetables,
	}
}

// WithName sets the entry name
func (b *ShoppingItemBuilder) WithName(name string) *ShoppingItemBuilder {
	b.name = name
	return b
}

// Checked marks the entry as already picked up
func (b *ShoppingItemBuilder) Checked() *ShoppingItemBuilder {
	b.checked = true
	return b
}

// FromRecipe records the recipe the entry came from
func (b *ShoppingItemBuilder) FromRecipe(recipeName string) *ShoppingItemBuilder {
	b.recipeName = recipeName
	return b
}

// Build creates the shopping item
func (b *ShoppingItemBuilder) Build() shopping.Item {
	return shopping.Item{
		ID:         shared.NewID(),
		Name:       b.name,
		Quantity:   b.quantity,
		Unit:       b.unit,
		Category:   b.category,
		Checked:    b.checked,
		AddedAt:    time.Now(),
		RecipeName: b.recipeName,
	}
}
