package inventory

import (
	"sort"
	"time"
)

// DefaultExpiringWindowDays is the selection window for "act now" items
const DefaultExpiringWindowDays = 3

// SortByUrgency orders items most urgent first
func SortByUrgency(items []Item) []Item {
	return SortByUrgencyAt(items, time.Now())
}

// SortByUrgencyAt orders items ascending by days remaining. The sort is
// stable: items sharing an expiry date keep their order of entry, which
// is what users see in the list.
func SortByUrgencyAt(items []Item, now time.Time) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].DaysLeft(now) < sorted[b].DaysLeft(now)
	})
	return sorted
}

// SelectExpiring picks the items worth acting on within the window
func SelectExpiring(items []Item, withinDays int) []Item {
	return SelectExpiringAt(items, withinDays, time.Now())
}

// SelectExpiringAt returns the subset with 0 <= days remaining <= withinDays.
// Already expired items are excluded: the selection means "cook this before
// it spoils", not "already spoiled". Overdue returns those separately.
func SelectExpiringAt(items []Item, withinDays int, now time.Time) []Item {
	var expiring []Item
	for _, item := range items {
		days := item.DaysLeft(now)
		if days >= 0 && days <= withinDays {
			expiring = append(expiring, item)
		}
	}
	return expiring
}

// Overdue returns items past their expiry date, discard candidates the UI
// shows apart from the expiring selection
func Overdue(items []Item) []Item {
	return OverdueAt(items, time.Now())
}

// OverdueAt returns items with negative days remaining
func OverdueAt(items []Item, now time.Time) []Item {
	var overdue []Item
	for _, item := range items {
		if item.DaysLeft(now) < 0 {
			overdue = append(overdue, item)
		}
	}
	return overdue
}

// GroupByCategory buckets items by category, preserving input order within
// each bucket. Categories with no members are absent from the map.
func GroupByCategory(items []Item) map[Category][]Item {
	groups := make(map[Category][]Item)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// EstimateSavings prices the expiring selection with a flat per-item
// constant. A placeholder heuristic, not a pricing model; the constant
// comes from configuration so it stays adjustable.
func EstimateSavings(items []Item, withinDays int, perItem float64) float64 {
	return EstimateSavingsAt(items, withinDays, perItem, time.Now())
}

// EstimateSavingsAt estimates against an explicit reference time
func EstimateSavingsAt(items []Item, withinDays int, perItem float64, now time.Time) float64 {
	return float64(len(SelectExpiringAt(items, withinDays, now))) * perItem
}
