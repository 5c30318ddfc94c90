// Package report computes derived summaries over a finance state snapshot.
// Everything here is pure and recomputed on each call; at the data scales
// this tool targets an O(n) pass per call is fine.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// MonthlySummary is the income/expense/balance triple for one calendar
// month.
type MonthlySummary struct {
	Income   float64
	Expenses float64
	Balance  float64
}

// Summarize totals the transactions dated in the same calendar month and
// year as now. Transactions from any other month never contribute, however
// recent they are.
func Summarize(txns []model.Transaction, now time.Time) MonthlySummary {
	var summary MonthlySummary
	for _, txn := range txns {
		if !txn.Date.SameMonth(now) {
			continue
		}
		switch txn.Type {
		case model.TypeIncome:
			summary.Income += txn.Amount
		case model.TypeExpense:
			summary.Expenses += txn.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	return summary
}

// BudgetStatus is one budget's spend against its monthly cap.
type BudgetStatus struct {
	Category   model.Category
	Budgeted   float64
	Spent      float64
	Percentage int
}

// BudgetProgress computes current-month spend against each budget, sorted
// by descending percentage so the budgets closest to being exceeded come
// first. Percentage is clamped to [0, 100], rounded to the nearest integer,
// and 0 when the budgeted amount is not positive.
func BudgetProgress(state model.FinanceState, now time.Time) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(state.Budgets))
	for _, budget := range state.Budgets {
		var spent float64
		for _, txn := range state.Transactions {
			if txn.Type == model.TypeExpense && txn.Category == budget.Category && txn.Date.SameMonth(now) {
				spent += txn.Amount
			}
		}
		statuses = append(statuses, BudgetStatus{
			Category:   budget.Category,
			Budgeted:   budget.Amount,
			Spent:      spent,
			Percentage: percentage(spent, budget.Amount),
		})
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Percentage > statuses[j].Percentage
	})
	return statuses
}

// percentage returns spent/budgeted as a whole percent clamped to [0, 100].
func percentage(spent, budgeted float64) int {
	if budgeted <= 0 {
		return 0
	}
	pct := math.Round(spent / budgeted * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return int(pct)
}

// CategoryTotal is the all-time expense total for one category.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// CategoryTotals sums all expense transactions by category, for charting.
// Not month-filtered. Categories with nothing spent are omitted; results
// follow the canonical category order.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	totals := make(map[model.Category]float64)
	for _, txn := range txns {
		if txn.Type == model.TypeExpense {
			totals[txn.Category] += txn.Amount
		}
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, category := range model.Categories() {
		if total, ok := totals[category]; ok && total > 0 {
			out = append(out, CategoryTotal{Category: category, Total: total})
		}
	}
	return out
}

// RecentTransactions returns up to limit transactions ordered newest first.
// Ties on date keep their stored relative order.
func RecentTransactions(txns []model.Transaction, limit int) []model.Transaction {
	sorted := append([]model.Transaction(nil), txns...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
