package models

// Report is the aggregate shown by the dashboard and reports views.
type Report struct {
	Total       float64
	Average     float64
	Count       int
	TopCategory string
	ByCategory  []CategoryAmount
	Recent      []Expense
	Monthly     []MonthAmount
}

// CategoryAmount is a total per category.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// MonthAmount is a total per calendar month, Month is formatted "2006-01".
type MonthAmount struct {
	Month  string
	Amount float64
}
