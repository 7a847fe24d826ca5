package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OtherCategory is used by reports for expenses without a category.
const OtherCategory = "OTHER"

// Expense is a single expense record as returned by the API.
type Expense struct {
	ID          int64    `json:"id,omitempty"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Date        DateTime `json:"date"`
	CreatedAt   DateTime `json:"createdAt"`
}

// When returns the date the expense is attributed to: Date, falling back to
// CreatedAt.
func (e Expense) When() time.Time {
	if !e.Date.IsZero() {
		return e.Date.Time
	}
	return e.CreatedAt.Time
}

// ExpenseRequest is the body of POST /expenses/add. Date is omitted when the
// user did not pick one and the server defaults it.
type ExpenseRequest struct {
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        *DateTime `json:"date,omitempty"`
}

// ExpenseList decodes both shapes the API answers with: a bare JSON array
// and an object wrapping the array under "expenses".
type ExpenseList []Expense

func (l *ExpenseList) UnmarshalJSON(b []byte) error {
	var items []Expense
	if err := json.Unmarshal(b, &items); err == nil {
		*l = items
		return nil
	}

	var wrapped struct {
		Expenses []Expense `json:"expenses"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return fmt.Errorf("decode expense list: %w", err)
	}
	*l = wrapped.Expenses
	return nil
}

// ExpenseForm is the raw input of the add-expense view. Date is a calendar
// date "2006-01-02" and may be empty.
type ExpenseForm struct {
	Amount      string
	Category    string
	Description string
	Date        string
}
