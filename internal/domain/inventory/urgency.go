package inventory

import (
	"fmt"
	"time"
)

// UrgencyTier represents how soon an item must be used
type UrgencyTier string

const (
	TierFresh    UrgencyTier = "fresh"
	TierWarning  UrgencyTier = "warning"
	TierCritical UrgencyTier = "critical"
)

// Tier thresholds in days remaining. Critical covers everything at or
// below criticalWithinDays, including already expired items: there is no
// separate "expired" tier, overdue items stay critical until deleted.
const (
	criticalWithinDays = 3
	warningWithinDays  = 7
)

// DaysRemaining reports whole days until expiry, negative once overdue
func DaysRemaining(expiry time.Time) int {
	return DaysRemainingAt(expiry, time.Now())
}

// DaysRemainingAt counts days from now to expiry at day granularity.
// Both timestamps collapse to their calendar date before subtracting, so
// the answer is insensitive to time of day, and the division rounds up:
// an item expiring in a few hours still reports 1 day, one expiring later
// today reports 0, never a fraction.
func DaysRemainingAt(expiry, now time.Time) int {
	diff := dateOnly(expiry).Sub(dateOnly(now))
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// dateOnly rebuilds the calendar date in UTC so day differences are exact
// multiples of 24h regardless of DST in the original location
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify maps an expiry date to its urgency tier
func Classify(expiry time.Time) UrgencyTier {
	return ClassifyAt(expiry, time.Now())
}

// ClassifyAt classifies relative to an explicit reference time
func ClassifyAt(expiry, now time.Time) UrgencyTier {
	days := DaysRemainingAt(expiry, now)
	switch {
	case days <= criticalWithinDays:
		return TierCritical
	case days <= warningWithinDays:
		return TierWarning
	default:
		return TierFresh
	}
}

// Describe renders a countdown for status badges. The UI layer localizes;
// this is the neutral fallback text.
func Describe(expiry time.Time) string {
	return DescribeAt(expiry, time.Now())
}

// DescribeAt renders the countdown relative to an explicit reference time
func DescribeAt(expiry, now time.Time) string {
	days := DaysRemainingAt(expiry, now)
	switch {
	case days < -1:
		return fmt.Sprintf("expired %d days ago", -days)
	case days == -1:
		return "expired yesterday"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires tomorrow"
	default:
		return fmt.Sprintf("expires in %d days", days)
	}
}

// Urgency returns the item's tier at the given reference time
func (i Item) Urgency(now time.Time) UrgencyTier {
	return ClassifyAt(i.ExpiryDate, now)
}

// DaysLeft returns the item's days remaining at the given reference time
func (i Item) DaysLeft(now time.Time) int {
	return DaysRemainingAt(i.ExpiryDate, now)
}
