package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
)

// MIMEXLSX is the content type for xlsx downloads.
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	expenseHeaderColor = "FFEF4444"
	incomeHeaderColor  = "FF6B46C1"
)

// ExpenseWorkbook encodes expenses into an xlsx byte stream. Row order
// matches the input; callers pass date-descending lists.
func ExpenseWorkbook(items []expense.Expense) ([]byte, error) {
	headers := []string{"Category", "Amount", "Date", "Description", "Created At"}
	widths := []float64{30, 15, 15, 40, 20}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{
			item.Category,
			item.Amount,
			formatDate(item.Date),
			item.Description,
			formatTimestamp(item.CreatedAt),
		})
	}

	return buildWorkbook("Expenses", headers, widths, expenseHeaderColor, rows)
}

// IncomeWorkbook encodes income records into an xlsx byte stream.
func IncomeWorkbook(items []income.Income) ([]byte, error) {
	headers := []string{"Source", "Amount", "Date", "Created At"}
	widths := []float64{30, 15, 15, 20}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{
			item.Source,
			item.Amount,
			formatDate(item.Date),
			formatTimestamp(item.CreatedAt),
		})
	}

	return buildWorkbook("Income", headers, widths, incomeHeaderColor, rows)
}

func buildWorkbook(sheet string, headers []string, widths []float64, headerColor string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", lastCol), style); err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
