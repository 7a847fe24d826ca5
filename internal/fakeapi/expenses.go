// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/utils"
	"github.com/MKhiriev/go-trackspense/models"
)

// addExpense records an expense for the authenticated account. A missing
// date defaults to the current time.
func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 || strings.TrimSpace(req.Category) == "" {
		log.Warn().Float64("amount", req.Amount).Msg("invalid data provided")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	now := models.NewDateTime(h.now())
	expense := models.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        now,
		CreatedAt:   now,
	}
	if req.Date != nil && !req.Date.IsZero() {
		expense.Date = *req.Date
	}

	created := h.store.addExpense(emailFromContext(r.Context()), expense)
	if err := utils.WriteJSON(w, http.StatusCreated, created); err != nil {
		log.Err(err).Msg("error writing expense")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// allExpenses answers with a bare JSON array.
func (h *Handler) allExpenses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	expenses := h.store.listExpenses(emailFromContext(r.Context()))
	if err := utils.WriteJSON(w, http.StatusOK, expenses); err != nil {
		log.Err(err).Msg("error writing expenses")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// expensesByDate answers with the expenses dated within [start, end],
// wrapped in an object under "expenses".
func (h *Handler) expensesByDate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	start, err := models.ParseDateTime(r.URL.Query().Get("start"))
	if err != nil {
		log.Err(err).Msg("invalid start")
		http.Error(w, app.MsgInvalidDateRange, http.StatusBadRequest)
		return
	}
	end, err := models.ParseDateTime(r.URL.Query().Get("end"))
	if err != nil {
		log.Err(err).Msg("invalid end")
		http.Error(w, app.MsgInvalidDateRange, http.StatusBadRequest)
		return
	}

	found := make([]models.Expense, 0)
	for _, e := range h.store.listExpenses(emailFromContext(r.Context())) {
		when := e.When()
		if !when.Before(start.Time) && !when.After(end.Time) {
			found = append(found, e)
		}
	}

	body := struct {
		Expenses []models.Expense `json:"expenses"`
	}{Expenses: found}
	if err = utils.WriteJSON(w, http.StatusOK, body); err != nil {
		log.Err(err).Msg("error writing expenses")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
