package reports

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/phpdave11/gofpdf"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/dashboard"
)

// MIMEPDF is the content type for the dashboard PDF download.
const MIMEPDF = "application/pdf"

// SnapshotPDF renders a dashboard snapshot as a printable summary:
// headline totals plus the category breakdown.
func SnapshotPDF(snap dashboard.Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Finance Dashboard Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Finance Dashboard")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Income: %.2f", snap.Summary.TotalIncome))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Expenses: %.2f", snap.Summary.TotalExpenses))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Balance: %.2f", snap.Summary.TotalBalance))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expenses by Category")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Ln(7)

	categories := make([]string, 0, len(snap.ExpensesByCategory))
	for category := range snap.ExpensesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	pdf.SetFont("Helvetica", "", 11)
	for _, category := range categories {
		pdf.Cell(90, 7, category)
		pdf.Cell(50, 7, fmt.Sprintf("%.2f", snap.ExpensesByCategory[category]))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
