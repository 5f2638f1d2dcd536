package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RankTestSuite provides a test suite for the inventory ranker
type RankTestSuite struct {
	suite.Suite
	now time.Time
}

// SetupSuite pins the reference time
func (suite *RankTestSuite) SetupSuite() {
	suite.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *RankTestSuite) item(name string, daysLeft int) Item {
	return Item{
		ID:         name + "-id",
		Name:       name,
		Quantity:   "1",
		Category:   CategoryOther,
		ExpiryDate: suite.now.AddDate(0, 0, daysLeft),
		AddedAt:    suite.now,
	}
}

// TestSortByUrgency tests urgency ordering
func (suite *RankTestSuite) TestSortByUrgency() {
	suite.Run("MostUrgentFirst", func() {
		items := []Item{
			suite.item("Cheese", 10),
			suite.item("Chicken", 1),
			suite.item("Yogurt", 5),
		}

		sorted := SortByUrgencyAt(items, suite.now)

		require.Len(suite.T(), sorted, 3)
		assert.Equal(suite.T(), "Chicken", sorted[0].Name)
		assert.Equal(suite.T(), "Yogurt", sorted[1].Name)
		assert.Equal(suite.T(), "Cheese", sorted[2].Name)
	})

	suite.Run("EqualExpiry_ShouldKeepEntryOrder", func() {
		items := []Item{
			suite.item("Milk", 2),
			suite.item("Bread", 2),
		}

		sorted := SortByUrgencyAt(items, suite.now)

		require.Len(suite.T(), sorted, 2)
		assert.Equal(suite.T(), "Milk", sorted[0].Name)
		assert.Equal(suite.T(), "Bread", sorted[1].Name)
	})

	suite.Run("Input_ShouldStayUntouched", func() {
		items := []Item{
			suite.item("Cheese", 10),
			suite.item("Chicken", 1),
		}

		SortByUrgencyAt(items, suite.now)

		assert.Equal(suite.T(), "Cheese", items[0].Name)
		assert.Equal(suite.T(), "Chicken", items[1].Name)
	})
}

// TestSelectExpiring tests the act-now selection window
func (suite *RankTestSuite) TestSelectExpiring() {
	suite.Run("WindowBounds_ShouldBeInclusive", func() {
		items := []Item{
			suite.item("Today", 0),
			suite.item("Boundary", 3),
			suite.item("Beyond", 4),
		}

		expiring := SelectExpiringAt(items, 3, suite.now)

		require.Len(suite.T(), expiring, 2)
		assert.Equal(suite.T(), "Today", expiring[0].Name)
		assert.Equal(suite.T(), "Boundary", expiring[1].Name)
	})

	suite.Run("ExpiredItem_ShouldBeExcluded", func() {
		expired := suite.item("Old milk", -1)
		items := []Item{expired, suite.item("Eggs", 2)}

		expiring := SelectExpiringAt(items, 3, suite.now)

		require.Len(suite.T(), expiring, 1)
		assert.Equal(suite.T(), "Eggs", expiring[0].Name)
		assert.Equal(suite.T(), TierCritical, expired.Urgency(suite.now))
		assert.Equal(suite.T(), -1, expired.DaysLeft(suite.now))
	})

	suite.Run("NoMatches_ShouldReturnEmpty", func() {
		items := []Item{suite.item("Canned beans", 120)}

		assert.Empty(suite.T(), SelectExpiringAt(items, 3, suite.now))
	})
}

// TestOverdue tests the discard-candidate selection
func (suite *RankTestSuite) TestOverdue() {
	items := []Item{
		suite.item("Spoiled", -2),
		suite.item("Fine", 5),
		suite.item("Also spoiled", -1),
	}

	overdue := OverdueAt(items, suite.now)

	require.Len(suite.T(), overdue, 2)
	assert.Equal(suite.T(), "Spoiled", overdue[0].Name)
	assert.Equal(suite.T(), "Also spoiled", overdue[1].Name)
}

// TestGroupByCategory tests category bucketing
func (suite *RankTestSuite) TestGroupByCategory() {
	suite.Run("BucketsPreserveEntryOrder", func() {
		milk := suite.item("Milk", 2)
		milk.Category = CategoryDairy
		cheese := suite.item("Cheese", 9)
		cheese.Category = CategoryDairy
		apple := suite.item("Apple", 6)
		apple.Category = CategoryFruits

		groups := GroupByCategory([]Item{milk, apple, cheese})

		require.Len(suite.T(), groups, 2)
		require.Len(suite.T(), groups[CategoryDairy], 2)
		assert.Equal(suite.T(), "Milk", groups[CategoryDairy][0].Name)
		assert.Equal(suite.T(), "Cheese", groups[CategoryDairy][1].Name)
	})

	suite.Run("EmptyBuckets_ShouldBeAbsent", func() {
		groups := GroupByCategory([]Item{suite.item("Bread", 1)})

		require.Len(suite.T(), groups, 1)
		_, hasMeat := groups[CategoryMeat]
		assert.False(suite.T(), hasMeat)
	})
}

// TestEstimateSavings tests the flat per-item heuristic
func (suite *RankTestSuite) TestEstimateSavings() {
	items := []Item{
		suite.item("A", 0),
		suite.item("B", 2),
		suite.item("C", 10),
		suite.item("D", -1),
	}

	savings := EstimateSavingsAt(items, 3, 150, suite.now)

	assert.Equal(suite.T(), 300.0, savings)
}

// TestRankTestSuite runs the test suite
func TestRankTestSuite(t *testing.T) {
	suite.Run(t, new(RankTestSuite))
}
