package recipe

import (
	"strings"
	"time"

	"github.com/fridgewise/core/internal/domain/shopping"
)

// BudgetTier represents the guest-menu budget level
type BudgetTier string

const (
	BudgetEconomy  BudgetTier = "economy"
	BudgetStandard BudgetTier = "standard"
	BudgetPremium  BudgetTier = "premium"
)

// ParseBudgetTier maps free-form tier text onto the fixed set, falling
// back to standard
func ParseBudgetTier(raw string) BudgetTier {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(raw))) {
	case BudgetEconomy:
		return BudgetEconomy
	case BudgetPremium:
		return BudgetPremium
	default:
		return BudgetStandard
	}
}

// CostBand is a per-person cost range in the user's local currency units
type CostBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// costBands fixes the per-person spend each budget tier stands for
var costBands = map[BudgetTier]CostBand{
	BudgetEconomy:  {Min: 500, Max: 1000},
	BudgetStandard: {Min: 1000, Max: 2000},
	BudgetPremium:  {Min: 2000, Max: 5000},
}

// CostBandFor returns the per-person cost band for a budget tier
func CostBandFor(tier BudgetTier) CostBand {
	if band, ok := costBands[tier]; ok {
		return band
	}
	return costBands[BudgetStandard]
}

// Guest count limits for menu generation
const (
	MinGuests = 1
	MaxGuests = 20
)

// MenuDish represents one dish inside a guest menu course
type MenuDish struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost"`
}

// GuestMenu represents a generated multi-course menu for entertaining.
// The four course buckets are fixed; PerPersonCost is always populated,
// derived from TotalCost when the generation output omits it.
type GuestMenu struct {
	ID            string          `json:"id"`
	GuestCount    int             `json:"guestCount"`
	Budget        BudgetTier      `json:"budget"`
	City          string          `json:"city,omitempty"`
	Appetizers    []MenuDish      `json:"appetizers"`
	Mains         []MenuDish      `json:"mains"`
	Desserts      []MenuDish      `json:"desserts"`
	Beverages     []MenuDish      `json:"beverages"`
	TotalCost     float64         `json:"totalCost"`
	PerPersonCost float64         `json:"perPersonCost"`
	ShoppingList  []shopping.Item `json:"shoppingList"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// Dishes returns every dish across the four courses in menu order
func (m GuestMenu) Dishes() []MenuDish {
	dishes := make([]MenuDish, 0, len(m.Appetizers)+len(m.Mains)+len(m.Desserts)+len(m.Beverages))
	dishes = append(dishes, m.Appetizers...)
	dishes = append(dishes, m.Mains...)
	dishes = append(dishes, m.Desserts...)
	dishes = append(dishes, m.Beverages...)
	return dishes
}
