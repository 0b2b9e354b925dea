package dashboard

import (
	"sort"
	"time"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
)

const recentLimit = 5

// Summary holds the three headline totals.
type Summary struct {
	TotalBalance  float64 `json:"total_balance"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}

// Snapshot is the full dashboard view-model for one user at one moment.
type Snapshot struct {
	Summary            Summary            `json:"summary"`
	RecentTransactions []expense.Expense  `json:"recent_transactions"`
	Last30DaysExpenses []expense.Expense  `json:"last_30_days_expenses"`
	Last60DaysIncome   []income.Income    `json:"last_60_days_income"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	IncomeBySource     map[string]float64 `json:"income_by_source"`
}

// Build reduces a user's complete income and expense lists into a Snapshot.
// Pure: it only reads the inputs and never returns an error. Empty inputs
// yield zero totals, empty slices and empty maps.
func Build(incomes []income.Income, expenses []expense.Expense, now time.Time) Snapshot {
	totalIncome := TotalIncome(incomes)
	totalExpenses := TotalExpenses(expenses)

	return Snapshot{
		Summary: Summary{
			TotalBalance:  totalIncome - totalExpenses,
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
		},
		RecentTransactions: RecentExpenses(expenses, recentLimit),
		Last30DaysExpenses: ExpensesSince(expenses, now.AddDate(0, 0, -30)),
		Last60DaysIncome:   IncomeSince(incomes, now.AddDate(0, 0, -60)),
		ExpensesByCategory: ExpensesByCategory(expenses),
		IncomeBySource:     IncomeBySource(incomes),
	}
}

func TotalIncome(incomes []income.Income) float64 {
	var sum float64
	for _, inc := range incomes {
		sum += inc.Amount
	}
	return sum
}

func TotalExpenses(expenses []expense.Expense) float64 {
	var sum float64
	for _, exp := range expenses {
		sum += exp.Amount
	}
	return sum
}

// RecentExpenses returns the n expenses with the latest dates, descending.
// The sort is stable so equal dates keep their input order.
func RecentExpenses(expenses []expense.Expense, n int) []expense.Expense {
	sorted := make([]expense.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ExpensesSince keeps expenses dated on or after cutoff, ascending by date.
func ExpensesSince(expenses []expense.Expense, cutoff time.Time) []expense.Expense {
	out := make([]expense.Expense, 0)
	for _, exp := range expenses {
		if !exp.Date.Before(cutoff) {
			out = append(out, exp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// IncomeSince keeps income dated on or after cutoff, ascending by date.
func IncomeSince(incomes []income.Income, cutoff time.Time) []income.Income {
	out := make([]income.Income, 0)
	for _, inc := range incomes {
		if !inc.Date.Before(cutoff) {
			out = append(out, inc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ExpensesByCategory sums amounts per category. Only categories that occur
// appear as keys; there is no zero-filling.
func ExpensesByCategory(expenses []expense.Expense) map[string]float64 {
	byCategory := make(map[string]float64)
	for _, exp := range expenses {
		byCategory[exp.Category] += exp.Amount
	}
	return byCategory
}

// IncomeBySource sums amounts per source.
func IncomeBySource(incomes []income.Income) map[string]float64 {
	bySource := make(map[string]float64)
	for _, inc := range incomes {
		bySource[inc.Source] += inc.Amount
	}
	return bySource
}
