package income

import "time"

type Income struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Source    string    `db:"source" json:"source"`
	Amount    float64   `db:"amount" json:"amount"`
	Date      time.Time `db:"date" json:"date"`
	Icon      string    `db:"icon" json:"icon"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateIncomeRequest struct {
	Source string   `json:"source"`
	Amount *float64 `json:"amount"`
	Date   string   `json:"date"` // YYYY-MM-DD or RFC3339, defaults to today
	Icon   string   `json:"icon"`
}
