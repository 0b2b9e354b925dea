package dashboard

import (
	"testing"
	"time"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildEmptyInput(t *testing.T) {
	now := day(2024, 5, 15)
	snap := Build(nil, nil, now)

	if snap.Summary.TotalIncome != 0 || snap.Summary.TotalExpenses != 0 || snap.Summary.TotalBalance != 0 {
		t.Errorf("totals = %+v, want all zero", snap.Summary)
	}
	if len(snap.RecentTransactions) != 0 {
		t.Errorf("recent = %d items, want 0", len(snap.RecentTransactions))
	}
	if len(snap.Last30DaysExpenses) != 0 || len(snap.Last60DaysIncome) != 0 {
		t.Error("windowed lists should be empty")
	}
	if len(snap.ExpensesByCategory) != 0 || len(snap.IncomeBySource) != 0 {
		t.Error("breakdowns should be empty maps")
	}
	if snap.RecentTransactions == nil || snap.Last30DaysExpenses == nil || snap.Last60DaysIncome == nil {
		t.Error("lists should be empty, not nil, so they encode as [] not null")
	}
}

func TestBuildExampleScenario(t *testing.T) {
	now := day(2024, 5, 15)
	expenses := []expense.Expense{
		{Category: "Food", Amount: 100, Date: now},
		{Category: "Food", Amount: 50, Date: now.AddDate(0, 0, -1)},
		{Category: "Travel", Amount: 200, Date: now.AddDate(0, 0, -2)},
	}
	incomes := []income.Income{
		{Source: "Salary", Amount: 1000, Date: now},
	}

	snap := Build(incomes, expenses, now)

	if snap.Summary.TotalIncome != 1000 {
		t.Errorf("TotalIncome = %v, want 1000", snap.Summary.TotalIncome)
	}
	if snap.Summary.TotalExpenses != 350 {
		t.Errorf("TotalExpenses = %v, want 350", snap.Summary.TotalExpenses)
	}
	if snap.Summary.TotalBalance != 650 {
		t.Errorf("TotalBalance = %v, want 650", snap.Summary.TotalBalance)
	}

	if got := snap.ExpensesByCategory["Food"]; got != 150 {
		t.Errorf("Food = %v, want 150", got)
	}
	if got := snap.ExpensesByCategory["Travel"]; got != 200 {
		t.Errorf("Travel = %v, want 200", got)
	}
	if len(snap.ExpensesByCategory) != 2 {
		t.Errorf("ExpensesByCategory has %d keys, want 2", len(snap.ExpensesByCategory))
	}
	if got := snap.IncomeBySource["Salary"]; got != 1000 {
		t.Errorf("Salary = %v, want 1000", got)
	}

	if len(snap.RecentTransactions) != 3 {
		t.Fatalf("recent = %d items, want 3", len(snap.RecentTransactions))
	}
	for i := 1; i < len(snap.RecentTransactions); i++ {
		if snap.RecentTransactions[i].Date.After(snap.RecentTransactions[i-1].Date) {
			t.Error("recent transactions not sorted date descending")
		}
	}
}

func TestBalanceIdentity(t *testing.T) {
	now := day(2024, 5, 15)
	incomes := []income.Income{
		{Source: "A", Amount: 12.5, Date: now},
		{Source: "B", Amount: 0, Date: now},
		{Source: "A", Amount: 99.25, Date: now},
	}
	expenses := []expense.Expense{
		{Category: "X", Amount: 3.75, Date: now},
		{Category: "Y", Amount: 40, Date: now},
	}

	snap := Build(incomes, expenses, now)

	if snap.Summary.TotalBalance != snap.Summary.TotalIncome-snap.Summary.TotalExpenses {
		t.Errorf("balance %v != income %v - expenses %v",
			snap.Summary.TotalBalance, snap.Summary.TotalIncome, snap.Summary.TotalExpenses)
	}

	var byCategory float64
	for _, v := range snap.ExpensesByCategory {
		byCategory += v
	}
	if byCategory != snap.Summary.TotalExpenses {
		t.Errorf("category breakdown sums to %v, want %v", byCategory, snap.Summary.TotalExpenses)
	}

	var bySource float64
	for _, v := range snap.IncomeBySource {
		bySource += v
	}
	if bySource != snap.Summary.TotalIncome {
		t.Errorf("source breakdown sums to %v, want %v", bySource, snap.Summary.TotalIncome)
	}
}

func TestRecentExpensesCapAndStability(t *testing.T) {
	now := day(2024, 5, 15)
	expenses := []expense.Expense{
		{ID: "a", Amount: 1, Date: now.AddDate(0, 0, -3)},
		{ID: "b", Amount: 2, Date: now},
		{ID: "c", Amount: 3, Date: now}, // same date as b, inserted after
		{ID: "d", Amount: 4, Date: now.AddDate(0, 0, -1)},
		{ID: "e", Amount: 5, Date: now.AddDate(0, 0, -2)},
		{ID: "f", Amount: 6, Date: now.AddDate(0, 0, -4)},
		{ID: "g", Amount: 7, Date: now.AddDate(0, 0, -5)},
	}

	recent := RecentExpenses(expenses, 5)
	if len(recent) != 5 {
		t.Fatalf("recent = %d items, want 5", len(recent))
	}

	wantOrder := []string{"b", "c", "d", "e", "a"}
	for i, want := range wantOrder {
		if recent[i].ID != want {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].ID, want)
		}
	}

	short := RecentExpenses(expenses[:2], 5)
	if len(short) != 2 {
		t.Errorf("recent over 2 records = %d items, want 2", len(short))
	}
}

func TestThirtyDayWindowBoundary(t *testing.T) {
	now := day(2024, 5, 15)
	onBoundary := expense.Expense{ID: "in", Amount: 1, Date: now.AddDate(0, 0, -30)}
	outside := expense.Expense{ID: "out", Amount: 1, Date: now.AddDate(0, 0, -31)}

	snap := Build(nil, []expense.Expense{outside, onBoundary}, now)

	if len(snap.Last30DaysExpenses) != 1 {
		t.Fatalf("window = %d items, want 1", len(snap.Last30DaysExpenses))
	}
	if snap.Last30DaysExpenses[0].ID != "in" {
		t.Errorf("window kept %s, want the record dated exactly 30 days ago", snap.Last30DaysExpenses[0].ID)
	}
}

func TestSixtyDayIncomeWindowAscending(t *testing.T) {
	now := day(2024, 5, 15)
	incomes := []income.Income{
		{ID: "new", Amount: 1, Date: now},
		{ID: "old", Amount: 1, Date: now.AddDate(0, 0, -59)},
		{ID: "ancient", Amount: 1, Date: now.AddDate(0, 0, -61)},
		{ID: "mid", Amount: 1, Date: now.AddDate(0, 0, -20)},
	}

	snap := Build(incomes, nil, now)

	want := []string{"old", "mid", "new"}
	if len(snap.Last60DaysIncome) != len(want) {
		t.Fatalf("window = %d items, want %d", len(snap.Last60DaysIncome), len(want))
	}
	for i, id := range want {
		if snap.Last60DaysIncome[i].ID != id {
			t.Errorf("window[%d] = %s, want %s", i, snap.Last60DaysIncome[i].ID, id)
		}
	}
}

func TestWindowSortAscendingForExpenses(t *testing.T) {
	now := day(2024, 5, 15)
	expenses := []expense.Expense{
		{ID: "c", Amount: 1, Date: now.AddDate(0, 0, -1)},
		{ID: "a", Amount: 1, Date: now.AddDate(0, 0, -10)},
		{ID: "b", Amount: 1, Date: now.AddDate(0, 0, -5)},
	}

	windowed := ExpensesSince(expenses, now.AddDate(0, 0, -30))
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if windowed[i].ID != id {
			t.Errorf("windowed[%d] = %s, want %s", i, windowed[i].ID, id)
		}
	}
}

func TestBuildIsPure(t *testing.T) {
	now := day(2024, 5, 15)
	expenses := []expense.Expense{
		{ID: "a", Category: "Food", Amount: 10, Date: now.AddDate(0, 0, -2)},
		{ID: "b", Category: "Food", Amount: 20, Date: now},
	}

	Build(nil, expenses, now)

	if expenses[0].ID != "a" || expenses[1].ID != "b" {
		t.Error("Build reordered its input slice")
	}
}
