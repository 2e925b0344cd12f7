package cards

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$2,210", Currency(2210))
	assert.Equal(t, "$12,346", Currency(12345.7))
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, "—", Currency(math.NaN()))
	assert.Equal(t, "—", Currency(math.Inf(1)))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$45.00", Money(45))
	assert.Equal(t, "$52.75", Money(52.75))
	assert.Equal(t, "—", Money(math.NaN()))
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, "+5.0%", Growth(5.0))
	assert.Equal(t, "-3.2%", Growth(-3.2))
	assert.Equal(t, "+0.0%", Growth(0))
	assert.Equal(t, "—", Growth(math.NaN()))
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, "91.5%", Accuracy(8.5))
	assert.Equal(t, "100.0%", Accuracy(0))
	assert.Equal(t, "—", Accuracy(math.NaN()))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "INCREASING", Trend("increasing"))
	assert.Equal(t, "STABLE", Trend(""))
	assert.Equal(t, "STABLE", Trend("   "))
	assert.Equal(t, "SIDEWAYS", Trend("sideways"))
}

func TestTitleLabel(t *testing.T) {
	assert.Equal(t, "Sales", TitleLabel("sales"))
	assert.Equal(t, "Account Management", TitleLabel("account_management"))
}

func TestPriorityOf(t *testing.T) {
	assert.Equal(t, 1, priorityOf("4_weeks"))
	assert.Equal(t, 4, priorityOf("52_weeks"))
	assert.Equal(t, 99, priorityOf("13_weeks"))
}
