package database

import (
	"fmt"

	"github.com/shopspring/decimal"

	"greenview-homes/app/models"
)

// MonthsOf extracts the month numbers of a set of obligations in order.
func MonthsOf(obligations []*models.BlockLotFee) []int {
	months := make([]int, len(obligations))
	for i, o := range obligations {
		months[i] = o.Month
	}
	return months
}

// TotalOf sums the joined fee amounts of a set of obligations.
func TotalOf(obligations []*models.BlockLotFee) decimal.Decimal {
	total := decimal.Zero
	for _, o := range obligations {
		total = total.Add(o.FeeAmount)
	}
	return total
}

// PeriodCoveredSpan renders the period for a set of obligations that may
// cross a year boundary. Within one year it defers to PeriodCovered;
// otherwise it spells both endpoints: "December 2024 to January 2025".
func PeriodCoveredSpan(obligations []*models.BlockLotFee) string {
	if len(obligations) == 0 {
		return ""
	}
	earliest, latest := obligations[0], obligations[0]
	for _, o := range obligations[1:] {
		if o.Year < earliest.Year || (o.Year == earliest.Year && o.Month < earliest.Month) {
			earliest = o
		}
		if o.Year > latest.Year || (o.Year == latest.Year && o.Month > latest.Month) {
			latest = o
		}
	}
	if earliest.Year == latest.Year {
		return PeriodCovered(MonthsOf(obligations), earliest.Year)
	}
	return fmt.Sprintf("%s %d to %s %d",
		models.MonthName(earliest.Month), earliest.Year,
		models.MonthName(latest.Month), latest.Year)
}

// PeriodCovered renders the human-readable period string for a set of
// covered months within one year: "March 2025" for a single month,
// "January to March 2025" for a range.
func PeriodCovered(months []int, year int) string {
	if len(months) == 0 {
		return ""
	}
	earliest, latest := months[0], months[0]
	for _, m := range months[1:] {
		if m < earliest {
			earliest = m
		}
		if m > latest {
			latest = m
		}
	}
	if earliest == latest {
		return fmt.Sprintf("%s %d", models.MonthName(earliest), year)
	}
	return fmt.Sprintf("%s to %s %d", models.MonthName(earliest), models.MonthName(latest), year)
}
