package domain

import (
	"errors"
	"time"
)

const (
	ExpensePending  = "pending"
	ExpenseApproved = "approved"
	ExpenseRejected = "rejected"
)

// Money pairs an amount with its ISO currency code.
type Money struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

var ErrMixedCurrencies = errors.New("line items mix currencies")

// ExpenseItem is one line of an expense claim.
type ExpenseItem struct {
	Description string  `json:"description" bson:"description" validate:"required"`
	Amount      float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" bson:"currency" validate:"required,len=3"`
}

// Expense is a vendor expense filed against a financial year.
type Expense struct {
	Meta          `bson:",inline"`
	Number        string        `json:"number" bson:"number"`
	FinancialYear string        `json:"financial_year" bson:"financial_year" validate:"required"`
	ExpenseType   string        `json:"expense_type" bson:"expense_type" validate:"required"`
	Vendor        string        `json:"vendor" bson:"vendor" validate:"required"`
	ExpenseDate   time.Time     `json:"expense_date" bson:"expense_date"`
	Status        string        `json:"status" bson:"status" validate:"omitempty,oneof=pending approved rejected"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Items         []ExpenseItem `json:"items" bson:"items" validate:"required,min=1,dive"`
}

// Total sums the expense line items. An empty item set yields a zero total.
// Summing across more than one currency is not meaningful, so a mixed set
// returns ErrMixedCurrencies and the caller must flag the aggregate as
// non-computable rather than display a number.
func (e *Expense) Total() (Money, error) {
	return SumItems(e.Items)
}

// SumItems folds a line-item set into a single Money value, enforcing that
// all items share one currency.
func SumItems(items []ExpenseItem) (Money, error) {
	if len(items) == 0 {
		return Money{}, nil
	}
	total := Money{Currency: items[0].Currency}
	for _, it := range items {
		if it.Currency != total.Currency {
			return Money{}, ErrMixedCurrencies
		}
		total.Amount += it.Amount
	}
	return total, nil
}
