package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// UrgencyTestSuite provides a test suite for the expiry classifier
type UrgencyTestSuite struct {
	suite.Suite
	now time.Time
}

// SetupSuite pins the reference time so day arithmetic is deterministic
func (suite *UrgencyTestSuite) SetupSuite() {
	suite.now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
}

func (suite *UrgencyTestSuite) day(offset int) time.Time {
	return suite.now.AddDate(0, 0, offset)
}

// TestDaysRemaining tests day-count arithmetic
func (suite *UrgencyTestSuite) TestDaysRemaining() {
	suite.Run("SameDay_ShouldReportZero", func() {
		expiry := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

		assert.Equal(suite.T(), 0, DaysRemainingAt(expiry, suite.now))
	})

	suite.Run("Tomorrow_ShouldReportOne", func() {
		expiry := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)

		assert.Equal(suite.T(), 1, DaysRemainingAt(expiry, suite.now))
	})

	suite.Run("Yesterday_ShouldReportMinusOne", func() {
		expiry := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

		assert.Equal(suite.T(), -1, DaysRemainingAt(expiry, suite.now))
	})

	suite.Run("TimeOfDay_ShouldNotMatter", func() {
		morning := time.Date(2025, 3, 14, 0, 1, 0, 0, time.UTC)
		evening := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)

		assert.Equal(suite.T(),
			DaysRemainingAt(morning, suite.now),
			DaysRemainingAt(evening, suite.now),
		)
	})

	suite.Run("ReferenceTimeOfDay_ShouldNotMatter", func() {
		expiry := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		earlyNow := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
		lateNow := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

		assert.Equal(suite.T(), 4, DaysRemainingAt(expiry, earlyNow))
		assert.Equal(suite.T(), 4, DaysRemainingAt(expiry, lateNow))
	})

	suite.Run("MonthBoundary_ShouldRollOver", func() {
		now := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)
		expiry := time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC)

		assert.Equal(suite.T(), 2, DaysRemainingAt(expiry, now))
	})
}

// TestClassify tests tier assignment at the documented boundaries
func (suite *UrgencyTestSuite) TestClassify() {
	suite.Run("ExpiredYesterday_ShouldBeCritical", func() {
		assert.Equal(suite.T(), TierCritical, ClassifyAt(suite.day(-1), suite.now))
	})

	suite.Run("Today_ShouldBeCritical", func() {
		assert.Equal(suite.T(), TierCritical, ClassifyAt(suite.day(0), suite.now))
	})

	suite.Run("ThreeDays_ShouldBeCritical", func() {
		assert.Equal(suite.T(), TierCritical, ClassifyAt(suite.day(3), suite.now))
	})

	suite.Run("FourDays_ShouldBeWarning", func() {
		assert.Equal(suite.T(), TierWarning, ClassifyAt(suite.day(4), suite.now))
	})

	suite.Run("FiveDays_ShouldBeWarning", func() {
		assert.Equal(suite.T(), TierWarning, ClassifyAt(suite.day(5), suite.now))
	})

	suite.Run("SevenDays_ShouldBeWarning", func() {
		assert.Equal(suite.T(), TierWarning, ClassifyAt(suite.day(7), suite.now))
	})

	suite.Run("EightDays_ShouldBeFresh", func() {
		assert.Equal(suite.T(), TierFresh, ClassifyAt(suite.day(8), suite.now))
	})
}

// TestDescribe tests countdown text
func (suite *UrgencyTestSuite) TestDescribe() {
	suite.Run("Today", func() {
		assert.Equal(suite.T(), "expires today", DescribeAt(suite.day(0), suite.now))
	})

	suite.Run("Tomorrow", func() {
		assert.Equal(suite.T(), "expires tomorrow", DescribeAt(suite.day(1), suite.now))
	})

	suite.Run("InFiveDays", func() {
		assert.Equal(suite.T(), "expires in 5 days", DescribeAt(suite.day(5), suite.now))
	})

	suite.Run("ExpiredYesterday", func() {
		assert.Equal(suite.T(), "expired yesterday", DescribeAt(suite.day(-1), suite.now))
	})

	suite.Run("ExpiredThreeDaysAgo", func() {
		assert.Equal(suite.T(), "expired 3 days ago", DescribeAt(suite.day(-3), suite.now))
	})
}

// TestUrgencyTestSuite runs the test suite
func TestUrgencyTestSuite(t *testing.T) {
	suite.Run(t, new(UrgencyTestSuite))
}
