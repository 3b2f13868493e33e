package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// stubRepo keeps records in insertion order and answers List with plain
// offset pagination, enough to exercise the service's clamping logic.
type stubRepo struct {
	records  []*domain.Expense
	listErr  error
	listHits int
}

func (r *stubRepo) List(_ context.Context, q ports.ListQuery) ([]*domain.Expense, int64, error) {
	r.listHits++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	total := int64(len(r.records))
	start := (q.Page - 1) * q.PageSize
	if start >= len(r.records) {
		return nil, total, nil
	}
	end := start + q.PageSize
	if end > len(r.records) {
		end = len(r.records)
	}
	return r.records[start:end], total, nil
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*domain.Expense, error) {
	for _, rec := range r.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) Insert(_ context.Context, rec *domain.Expense) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *stubRepo) Update(_ context.Context, rec *domain.Expense) error {
	for i, existing := range r.records {
		if existing.RecordID() == rec.RecordID() {
			r.records[i] = rec
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	for i, rec := range r.records {
		if rec.RecordID() == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seededRepo(n int) *stubRepo {
	repo := &stubRepo{}
	for i := 0; i < n; i++ {
		e := &domain.Expense{Vendor: fmt.Sprintf("vendor-%02d", i)}
		e.StampNew(fmt.Sprintf("id-%02d", i), e.CreatedAt)
		repo.records = append(repo.records, e)
	}
	return repo
}

func TestResourceList_Pagination(t *testing.T) {
	repo := seededRepo(45)
	svc := NewResource[*domain.Expense]("expenses", repo, 20, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListQuery{Page: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.TotalRecords != 45 {
		t.Fatalf("expected 45 total records, got %d", page.TotalRecords)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Records) != 20 {
		t.Fatalf("expected 20 records on page 1, got %d", len(page.Records))
	}

	page, err = svc.List(context.Background(), ports.ListQuery{Page: 3})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Records) != 5 {
		t.Fatalf("expected 5 records on last page, got %d", len(page.Records))
	}
}

func TestResourceList_ClampsPageBeyondEnd(t *testing.T) {
	repo := seededRepo(45)
	svc := NewResource[*domain.Expense]("expenses", repo, 20, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListQuery{Page: 5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.CurrentPage != 3 {
		t.Fatalf("expected clamp to page 3, got %d", page.CurrentPage)
	}
	if len(page.Records) != 5 {
		t.Fatalf("expected last page records after clamp, got %d", len(page.Records))
	}
}

func TestResourceList_PageBelowOne(t *testing.T) {
	repo := seededRepo(5)
	svc := NewResource[*domain.Expense]("expenses", repo, 20, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListQuery{Page: -3})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.CurrentPage != 1 {
		t.Fatalf("expected page 1, got %d", page.CurrentPage)
	}
}

func TestResourceList_EmptySet(t *testing.T) {
	svc := NewResource[*domain.Expense]("expenses", &stubRepo{}, 20, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListQuery{Page: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.TotalPages != 0 || page.TotalRecords != 0 {
		t.Fatalf("expected empty pagination, got %+v", page)
	}
	if page.CurrentPage != 1 {
		t.Fatalf("expected page 1 on empty set, got %d", page.CurrentPage)
	}
}

func TestResourceCreate_StampsIdentity(t *testing.T) {
	repo := &stubRepo{}
	svc := NewResource[*domain.Expense]("expenses", repo, 20, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Expense{Vendor: "acme"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.RecordID() == "" {
		t.Fatalf("expected server-assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
}
