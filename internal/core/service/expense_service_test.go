package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
)

func expenseWith(id, year, expenseType, vendor string, items ...domain.ExpenseItem) *domain.Expense {
	e := &domain.Expense{
		FinancialYear: year,
		ExpenseType:   expenseType,
		Vendor:        vendor,
		Items:         items,
	}
	e.StampNew(id, e.CreatedAt)
	return e
}

func TestExpenseSummary_GroupsByType(t *testing.T) {
	repo := &stubRepo{records: []*domain.Expense{
		expenseWith("e1", "2025-26", "travel", "acme",
			domain.ExpenseItem{Description: "flight", Amount: 100, Currency: "USD"}),
		expenseWith("e2", "2025-26", "travel", "globex",
			domain.ExpenseItem{Description: "hotel", Amount: 50, Currency: "USD"}),
		expenseWith("e3", "2025-26", "catering", "initech",
			domain.ExpenseItem{Description: "lunch", Amount: 30, Currency: "USD"}),
	}}
	svc := NewExpenseService(repo, 20, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), "2025-26", "")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.GroupBy != "expense_type" {
		t.Fatalf("expected default group_by expense_type, got %s", summary.GroupBy)
	}
	if len(summary.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(summary.Groups))
	}

	// Groups come back sorted by key.
	catering, travel := summary.Groups[0], summary.Groups[1]
	if catering.Key != "catering" || travel.Key != "travel" {
		t.Fatalf("unexpected group keys: %s, %s", catering.Key, travel.Key)
	}
	if !travel.Computable || travel.Total.Amount != 150 {
		t.Fatalf("expected computable travel total 150, got %+v", travel)
	}
	if travel.Count != 2 {
		t.Fatalf("expected 2 travel expenses, got %d", travel.Count)
	}
}

func TestExpenseSummary_MixedCurrenciesNonComputable(t *testing.T) {
	repo := &stubRepo{records: []*domain.Expense{
		expenseWith("e1", "2025-26", "travel", "acme",
			domain.ExpenseItem{Description: "flight", Amount: 10, Currency: "USD"}),
		expenseWith("e2", "2025-26", "travel", "globex",
			domain.ExpenseItem{Description: "hotel", Amount: 20, Currency: "EUR"}),
	}}
	svc := NewExpenseService(repo, 20, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), "2025-26", "expense_type")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if len(summary.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(summary.Groups))
	}
	g := summary.Groups[0]
	if g.Computable {
		t.Fatalf("mixed-currency group must be non-computable")
	}
	if g.Total.Amount != 0 {
		t.Fatalf("non-computable total must stay zero, got %v", g.Total.Amount)
	}
}

func TestExpenseSummary_UnknownGroupKey(t *testing.T) {
	svc := NewExpenseService(&stubRepo{}, 20, zerolog.Nop())

	if _, err := svc.Summary(context.Background(), "2025-26", "color"); err != ErrUnknownGroupKey {
		t.Fatalf("expected ErrUnknownGroupKey, got %v", err)
	}
}

func TestExpenseCreate_DefaultsStatus(t *testing.T) {
	svc := NewExpenseService(&stubRepo{}, 20, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Expense{
		FinancialYear: "2025-26",
		ExpenseType:   "travel",
		Vendor:        "acme",
		Items:         []domain.ExpenseItem{{Description: "taxi", Amount: 5, Currency: "USD"}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.ExpensePending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
}
