package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Resource implements the CRUD contract shared by every admin screen.
// T is instantiated with a pointer type, e.g. *domain.Expense.
type Resource[T domain.Record] struct {
	repo     ports.ResourceRepository[T]
	module   string
	pageSize int
	log      zerolog.Logger
}

func NewResource[T domain.Record](module string, repo ports.ResourceRepository[T], pageSize int, log zerolog.Logger) *Resource[T] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Resource[T]{repo: repo, module: module, pageSize: pageSize, log: log}
}

// List fetches one page. The page number is clamped into [1, totalPages]:
// a filter change can shrink the result set under the requested page, and
// the caller must get the last page back rather than a silently empty one.
func (s *Resource[T]) List(ctx context.Context, q ports.ListQuery) (*ports.Page[T], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	records, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Str("module", s.module).Msg("list failed")
		return nil, err
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	if totalPages > 0 && q.Page > totalPages {
		q.Page = totalPages
		records, total, err = s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
	}

	return &ports.Page[T]{
		Records:      records,
		TotalRecords: total,
		CurrentPage:  q.Page,
		TotalPages:   totalPages,
	}, nil
}

func (s *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	rec.StampNew(uuid.NewString(), time.Now().UTC())

	if err := s.repo.Insert(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("module", s.module).Msg("create failed")
		var zero T
		return zero, err
	}

	s.log.Info().Str("module", s.module).Str("id", rec.RecordID()).Msg("record created")
	return rec, nil
}

func (s *Resource[T]) Update(ctx context.Context, rec T) (T, error) {
	rec.StampUpdate(time.Now().UTC())

	if err := s.repo.Update(ctx, rec); err != nil {
		var zero T
		return zero, err
	}

	s.log.Info().Str("module", s.module).Str("id", rec.RecordID()).Msg("record updated")
	return rec, nil
}

func (s *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("module", s.module).Str("id", id).Msg("record deleted")
	return nil
}
