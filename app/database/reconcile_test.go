package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"greenview-homes/app/models"
)

func obligation(month int, amount string) *models.BlockLotFee {
	return &models.BlockLotFee{
		Month:     month,
		FeeAmount: decimal.RequireFromString(amount),
	}
}

func obligationYM(month, year int) *models.BlockLotFee {
	return &models.BlockLotFee{Month: month, Year: year}
}

func TestPeriodCovered(t *testing.T) {
	assert.Equal(t, "March 2025", PeriodCovered([]int{3}, 2025))
	assert.Equal(t, "January to March 2025", PeriodCovered([]int{1, 2, 3}, 2025))
	assert.Equal(t, "February to November 2024", PeriodCovered([]int{11, 2, 7}, 2024))
	assert.Equal(t, "", PeriodCovered(nil, 2025))
}

func TestPeriodCoveredGaps(t *testing.T) {
	// Missing months in between do not change the rendered range.
	assert.Equal(t, "January to December 2025", PeriodCovered([]int{1, 12}, 2025))
}

func TestPeriodCoveredSpan(t *testing.T) {
	// a settled selection may cross the year boundary
	assert.Equal(t, "December 2024 to January 2025", PeriodCoveredSpan([]*models.BlockLotFee{
		obligationYM(12, 2024),
		obligationYM(1, 2025),
	}))
	assert.Equal(t, "November 2023 to February 2025", PeriodCoveredSpan([]*models.BlockLotFee{
		obligationYM(2, 2025),
		obligationYM(11, 2023),
		obligationYM(6, 2024),
	}))
}

func TestPeriodCoveredSpanSingleYear(t *testing.T) {
	assert.Equal(t, "January to March 2025", PeriodCoveredSpan([]*models.BlockLotFee{
		obligationYM(1, 2025),
		obligationYM(2, 2025),
		obligationYM(3, 2025),
	}))
	assert.Equal(t, "March 2025", PeriodCoveredSpan([]*models.BlockLotFee{obligationYM(3, 2025)}))
	assert.Equal(t, "", PeriodCoveredSpan(nil))
}

func TestTotalOf(t *testing.T) {
	obligations := []*models.BlockLotFee{
		obligation(1, "500.00"),
		obligation(2, "500.00"),
		obligation(3, "500.00"),
	}
	assert.True(t, decimal.RequireFromString("1500.00").Equal(TotalOf(obligations)))
	assert.True(t, TotalOf(nil).IsZero())
}

func TestTotalOfMixedAmounts(t *testing.T) {
	obligations := []*models.BlockLotFee{
		obligation(4, "500.00"),
		obligation(4, "120.50"),
	}
	assert.True(t, decimal.RequireFromString("620.50").Equal(TotalOf(obligations)))
}

func TestMonthsOf(t *testing.T) {
	obligations := []*models.BlockLotFee{
		obligation(1, "500.00"),
		obligation(2, "500.00"),
	}
	assert.Equal(t, []int{1, 2}, MonthsOf(obligations))
	assert.Empty(t, MonthsOf(nil))
}
