package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

const summaryBatchSize = 100

var ErrUnknownGroupKey = errors.New("unknown summary group key")

// ExpenseGroup is one drill-down bucket of the financial-year summary.
// Computable is false when the bucket's line items mix currencies; the total
// must then be treated as absent, never as a number.
type ExpenseGroup struct {
	Key        string       `json:"key"`
	Count      int          `json:"count"`
	Total      domain.Money `json:"total"`
	Computable bool         `json:"computable"`
}

// ExpenseSummary groups a financial year's expenses by type or vendor.
type ExpenseSummary struct {
	FinancialYear string         `json:"financial_year"`
	GroupBy       string         `json:"group_by"`
	Groups        []ExpenseGroup `json:"groups"`
}

// ExpenseService is the expenses resource plus the grouped summary used by
// the financial-year drill-down screen.
type ExpenseService struct {
	*Resource[*domain.Expense]
	repo ports.ResourceRepository[*domain.Expense]
	log  zerolog.Logger
}

func NewExpenseService(repo ports.ResourceRepository[*domain.Expense], pageSize int, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{
		Resource: NewResource[*domain.Expense](domain.ModuleExpenses, repo, pageSize, log),
		repo:     repo,
		log:      log,
	}
}

func (s *ExpenseService) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	if e.Status == "" {
		e.Status = domain.ExpensePending
	}
	return s.Resource.Create(ctx, e)
}

// Summary recomputes the grouped totals from the stored records on every
// call; nothing is cached between requests.
func (s *ExpenseService) Summary(ctx context.Context, financialYear, groupBy string) (*ExpenseSummary, error) {
	var key func(*domain.Expense) string
	switch groupBy {
	case "", "expense_type":
		groupBy = "expense_type"
		key = func(e *domain.Expense) string { return e.ExpenseType }
	case "vendor":
		key = func(e *domain.Expense) string { return e.Vendor }
	default:
		return nil, ErrUnknownGroupKey
	}

	expenses, err := s.listAll(ctx, financialYear)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]domain.ExpenseItem)
	counts := make(map[string]int)
	for _, e := range expenses {
		k := key(e)
		buckets[k] = append(buckets[k], e.Items...)
		counts[k]++
	}

	groups := make([]ExpenseGroup, 0, len(buckets))
	for k, items := range buckets {
		g := ExpenseGroup{Key: k, Count: counts[k]}
		total, err := domain.SumItems(items)
		if err == nil {
			g.Total = total
			g.Computable = true
		}
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	return &ExpenseSummary{FinancialYear: financialYear, GroupBy: groupBy, Groups: groups}, nil
}

func (s *ExpenseService) listAll(ctx context.Context, financialYear string) ([]*domain.Expense, error) {
	var all []*domain.Expense
	q := ports.ListQuery{
		Page:     1,
		PageSize: summaryBatchSize,
		Filters:  map[string]string{"financial_year": financialYear},
	}
	for {
		records, total, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
		if int64(len(all)) >= total || len(records) == 0 {
			return all, nil
		}
		q.Page++
	}
}
