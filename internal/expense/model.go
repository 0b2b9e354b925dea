package expense

import "time"

type Expense struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Category    string    `db:"category" json:"category"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Icon        string    `db:"icon" json:"icon"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateExpenseRequest struct {
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"` // YYYY-MM-DD or RFC3339, defaults to today
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}
