package inventory

// defaultShelfLife maps each category to the days a newly added item is
// assumed to keep when the user does not supply an expiry date
var defaultShelfLife = map[Category]int{
	CategoryDairy:      7,
	CategoryMeat:       5,
	CategoryVegetables: 7,
	CategoryFruits:     7,
	CategoryGrains:     180,
	CategoryBeverages:  30,
	CategoryCondiments: 90,
	CategoryFrozen:     90,
	CategoryBakery:     5,
	CategoryOther:      14,
}

// DefaultShelfLifeDays returns the default shelf life for a category
func DefaultShelfLifeDays(category Category) int {
	if days, ok := defaultShelfLife[category]; ok {
		return days
	}
	return defaultShelfLife[CategoryOther]
}
