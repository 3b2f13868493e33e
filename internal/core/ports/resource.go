package ports

import (
	"context"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// ListQuery carries all query parameters for listing one page of a resource.
type ListQuery struct {
	Page     int               // 1-based; clamped into [1, totalPages] by the service
	PageSize int               // fixed per screen; the service applies its default when 0
	Search   string            // optional free-text match against the entity's search fields
	Filters  map[string]string // optional exact-match filters (status/month/year/language/category)
}

// Page is one fetched page of records plus the pagination the backend derives
// from the full result set. It is replaced wholesale on every fetch.
type Page[T any] struct {
	Records      []T
	TotalRecords int64
	CurrentPage  int
	TotalPages   int
}

// ResourceRepository defines persistence operations for one entity collection.
// T is instantiated with a pointer type, e.g. *domain.Expense.
type ResourceRepository[T domain.Record] interface {
	// List returns a page of records matching the query and the total count.
	List(ctx context.Context, q ListQuery) ([]T, int64, error)
	FindByID(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}

// ResourceService is the application-level CRUD contract handlers talk to.
type ResourceService[T domain.Record] interface {
	List(ctx context.Context, q ListQuery) (*Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}
