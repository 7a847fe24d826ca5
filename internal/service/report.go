// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MKhiriev/go-trackspense/models"
)

// RecentLimit is how many expenses the dashboard lists.
const RecentLimit = 5

// NoTopCategory is shown as the top category when there are no expenses.
const NoTopCategory = "-"

// Summarize aggregates expenses for the dashboard and reports views.
//
// Expenses without a category count as [models.OtherCategory]. ByCategory
// is ordered by amount, largest first, ties by name; Monthly is ordered by
// month ascending; Recent holds the [RecentLimit] latest expenses by date,
// falling back to the creation time.
func Summarize(expenses []models.Expense) models.Report {
	report := models.Report{
		Count:       len(expenses),
		TopCategory: NoTopCategory,
		ByCategory:  []models.CategoryAmount{},
		Recent:      []models.Expense{},
		Monthly:     []models.MonthAmount{},
	}
	if len(expenses) == 0 {
		return report
	}

	byCategory := make(map[string]float64)
	byMonth := make(map[string]float64)
	for _, e := range expenses {
		report.Total += e.Amount

		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = models.OtherCategory
		}
		byCategory[category] += e.Amount

		if when := e.When(); !when.IsZero() {
			byMonth[when.Format("2006-01")] += e.Amount
		}
	}
	report.Average = report.Total / float64(len(expenses))

	for category, amount := range byCategory {
		report.ByCategory = append(report.ByCategory, models.CategoryAmount{Category: category, Amount: amount})
	}
	slices.SortFunc(report.ByCategory, func(a, b models.CategoryAmount) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	report.TopCategory = report.ByCategory[0].Category

	for month, amount := range byMonth {
		report.Monthly = append(report.Monthly, models.MonthAmount{Month: month, Amount: amount})
	}
	slices.SortFunc(report.Monthly, func(a, b models.MonthAmount) int {
		return strings.Compare(a.Month, b.Month)
	})

	report.Recent = Recent(expenses, RecentLimit)
	return report
}

// Recent returns up to limit expenses, latest first. The input is not
// modified.
func Recent(expenses []models.Expense, limit int) []models.Expense {
	sorted := slices.Clone(expenses)
	slices.SortStableFunc(sorted, func(a, b models.Expense) int {
		return b.When().Compare(a.When())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

var nairaPrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatNaira formats amount as Naira with grouped thousands and two
// decimals, e.g. "₦1,234.50".
func FormatNaira(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	// rounds to zero when printed: avoid "-₦0.00"
	if amount < 0 && math.Round(-amount*100) != 0 {
		sign = "-"
	}
	return sign + "₦" + nairaPrinter.Sprintf("%.2f", math.Abs(amount))
}
