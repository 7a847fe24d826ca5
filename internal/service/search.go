package service

import (
	"strings"

	"github.com/MKhiriev/go-trackspense/models"
)

// Search returns the expenses whose description or category contains query,
// ignoring case and surrounding spaces. An empty query returns expenses
// unchanged.
func Search(expenses []models.Expense, query string) []models.Expense {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return expenses
	}

	found := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), query) ||
			strings.Contains(strings.ToLower(e.Category), query) {
			found = append(found, e)
		}
	}
	return found
}
