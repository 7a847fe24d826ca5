package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trackspense/models"
)

func day(y int, m time.Month, d int) models.DateTime {
	return models.NewDateTime(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(nil)

	assert.Zero(t, r.Total)
	assert.Zero(t, r.Average)
	assert.Zero(t, r.Count)
	assert.Equal(t, "-", r.TopCategory)
	assert.Empty(t, r.ByCategory)
	assert.Empty(t, r.Recent)
	assert.Empty(t, r.Monthly)
}

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Amount: 100, Category: "FOOD", Date: day(2025, 8, 1)},
		{ID: 2, Amount: 300, Category: "BILLS", Date: day(2025, 9, 2)},
		{ID: 3, Amount: 50, Category: "", Date: day(2025, 9, 3)},
		{ID: 4, Amount: 250, Category: "FOOD", CreatedAt: day(2025, 9, 10)},
		{ID: 5, Amount: 20, Category: "  ", Date: day(2025, 7, 15)},
		{ID: 6, Amount: 80, Category: "TRANSPORT", Date: day(2025, 9, 5)},
	}

	r := Summarize(expenses)

	assert.Equal(t, 800.0, r.Total)
	assert.InDelta(t, 133.333, r.Average, 0.001)
	assert.Equal(t, 6, r.Count)
	assert.Equal(t, "FOOD", r.TopCategory)

	assert.Equal(t, []models.CategoryAmount{
		{Category: "FOOD", Amount: 350},
		{Category: "BILLS", Amount: 300},
		{Category: "TRANSPORT", Amount: 80},
		{Category: models.OtherCategory, Amount: 70},
	}, r.ByCategory)

	assert.Equal(t, []models.MonthAmount{
		{Month: "2025-07", Amount: 20},
		{Month: "2025-08", Amount: 100},
		{Month: "2025-09", Amount: 680},
	}, r.Monthly)

	require.Len(t, r.Recent, RecentLimit)
	ids := make([]int64, 0, RecentLimit)
	for _, e := range r.Recent {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{4, 6, 3, 2, 1}, ids)
}

func TestSummarize_TieBrokenByName(t *testing.T) {
	r := Summarize([]models.Expense{
		{Amount: 10, Category: "TRANSPORT"},
		{Amount: 10, Category: "BILLS"},
	})
	assert.Equal(t, "BILLS", r.TopCategory)
	assert.Empty(t, r.Monthly, "undated expenses have no month")
}

func TestRecent_DoesNotModifyInput(t *testing.T) {
	in := []models.Expense{
		{ID: 1, Date: day(2025, 1, 1)},
		{ID: 2, Date: day(2025, 2, 1)},
	}

	got := Recent(in, 1)

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), in[0].ID)
}

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₦0.00"},
		{5, "₦5.00"},
		{1234.5, "₦1,234.50"},
		{1234567.891, "₦1,234,567.89"},
		{-2500, "-₦2,500.00"},
		{-0.001, "₦0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNaira(tt.amount))
	}
}
