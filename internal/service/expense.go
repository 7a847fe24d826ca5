package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/models"
)

type expenseService struct {
	adapter adapter.ServerAdapter
	now     func() time.Time
	logger  *logger.Logger
}

func NewExpenseService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ExpenseService {
	return &expenseService{adapter: serverAdapter, now: time.Now, logger: logger}
}

func (e *expenseService) Add(ctx context.Context, form models.ExpenseForm) (models.Expense, error) {
	req, err := e.validateExpenseForm(form)
	if err != nil {
		return models.Expense{}, err
	}

	created, err := e.adapter.AddExpense(ctx, req)
	if err != nil {
		return models.Expense{}, fmt.Errorf("add expense: %w", mapAdapterError(err))
	}
	return created, nil
}

func (e *expenseService) All(ctx context.Context) ([]models.Expense, error) {
	expenses, err := e.adapter.GetAllExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("get expenses: %w", mapAdapterError(err))
	}
	return expenses, nil
}

func (e *expenseService) ByDate(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	if end.Before(start) {
		start, end = end, start
	}

	expenses, err := e.adapter.GetExpensesByDate(ctx,
		start.Format(models.DateTimeLayout),
		end.Format(models.DateTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("get expenses by date: %w", mapAdapterError(err))
	}
	return expenses, nil
}

// validateExpenseForm turns the raw form into a request. The date, when
// given, is sent as midnight local time of that day.
func (e *expenseService) validateExpenseForm(form models.ExpenseForm) (models.ExpenseRequest, error) {
	amountText := strings.TrimSpace(form.Amount)
	category := strings.TrimSpace(form.Category)
	if amountText == "" || category == "" {
		return models.ExpenseRequest{}, ErrValidationAmountCategory
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return models.ExpenseRequest{}, ErrValidationAmount
	}

	req := models.ExpenseRequest{
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(form.Description),
	}

	dateText := strings.TrimSpace(form.Date)
	if dateText == "" {
		return req, nil
	}

	day, err := time.ParseInLocation(models.DateLayout, dateText, time.Local)
	if err != nil {
		return models.ExpenseRequest{}, ErrValidationDate
	}
	if day.Format(models.DateLayout) > e.now().Format(models.DateLayout) {
		return models.ExpenseRequest{}, ErrValidationFutureDate
	}

	date := models.NewDateTime(day)
	req.Date = &date
	return req, nil
}
