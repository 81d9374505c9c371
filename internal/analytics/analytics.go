// Package analytics contains the pure aggregation primitives shared by the
// dashboard and report endpoints. All functions operate on already-fetched
// transaction slices and never touch the database.
package analytics

import (
	"time"

	"momentum/internal/models"
)

// SumByCategory reduces transactions to a category -> total map. The category
// is free-text user input and is treated as an opaque key: no normalization,
// no assumed taxonomy, no zero-fill for unseen categories. Amounts are cents,
// so summation is exact.
func SumByCategory(transactions []models.Transaction) map[string]int64 {
	totals := make(map[string]int64)
	for _, t := range transactions {
		totals[t.Category] += t.Amount
	}
	return totals
}

// SplitByType partitions transactions into income and expense slices.
func SplitByType(transactions []models.Transaction) (income, expenses []models.Transaction) {
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			income = append(income, t)
		} else {
			expenses = append(expenses, t)
		}
	}
	return income, expenses
}

// SumAmounts returns the total of all transaction amounts.
func SumAmounts(transactions []models.Transaction) int64 {
	var total int64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

// SumValues totals a category map. Used by the report summary so that the
// reported totals reconcile with the category breakdowns by construction.
func SumValues(byCategory map[string]int64) int64 {
	var total int64
	for _, v := range byCategory {
		total += v
	}
	return total
}

// DayTotals holds the per-day income/expense pair of the report's dailyData.
type DayTotals struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
}

// DayKey formats a transaction date as the calendar-day bucket key,
// using the date portion in the transaction's stored location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DailyData buckets transactions by calendar day into income/expense pairs.
// Only days with at least one transaction appear in the result.
func DailyData(transactions []models.Transaction) map[string]DayTotals {
	daily := make(map[string]DayTotals)
	for _, t := range transactions {
		key := DayKey(t.Date)
		totals := daily[key]
		if t.Type == models.TransactionTypeIncome {
			totals.Income += t.Amount
		} else {
			totals.Expenses += t.Amount
		}
		daily[key] = totals
	}
	return daily
}

// MonthWindow returns the inclusive [first day, last day] bounds of the
// calendar month containing now, in now's location. The end bound extends to
// the last nanosecond of the final day so date <= end captures the whole day.
func MonthWindow(now time.Time) (start, end time.Time) {
	year, month, _ := now.Date()
	start = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// EndOfDay extends a parsed calendar date to the last nanosecond of that day,
// making it usable as an inclusive upper bound.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
