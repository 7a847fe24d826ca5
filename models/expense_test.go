package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseList_UnmarshalArray(t *testing.T) {
	var list ExpenseList
	err := json.Unmarshal([]byte(`[
		{"id":1,"amount":1500.5,"category":"FOOD","description":"lunch","date":"2025-09-27T00:00:00"},
		{"id":2,"amount":200,"category":"TRANSPORT"}
	]`), &list)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1500.5, list[0].Amount)
	assert.Equal(t, "2025-09-27", list[0].Date.DateOnly())
	assert.True(t, list[1].Date.IsZero())
}

func TestExpenseList_UnmarshalWrapped(t *testing.T) {
	var list ExpenseList
	err := json.Unmarshal([]byte(`{"expenses":[{"id":7,"amount":10,"category":"BILLS"}]}`), &list)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
}

func TestExpenseList_UnmarshalInvalid(t *testing.T) {
	var list ExpenseList
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &list))
}

func TestExpense_When(t *testing.T) {
	created := NewDateTime(time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local))
	dated := NewDateTime(time.Date(2025, 3, 4, 0, 0, 0, 0, time.Local))

	assert.Equal(t, dated.Time, Expense{Date: dated, CreatedAt: created}.When())
	assert.Equal(t, created.Time, Expense{CreatedAt: created}.When())
}

func TestExpenseRequest_OmitsEmptyDate(t *testing.T) {
	b, err := json.Marshal(ExpenseRequest{Amount: 5, Category: "FOOD", Description: "tea"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":5,"category":"FOOD","description":"tea"}`, string(b))

	d := NewDateTime(time.Date(2025, 9, 27, 0, 0, 0, 0, time.Local))
	b, err = json.Marshal(ExpenseRequest{Amount: 5, Category: "FOOD", Date: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":5,"category":"FOOD","description":"","date":"2025-09-27T00:00:00"}`, string(b))
}
