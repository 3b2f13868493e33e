package service

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type stubSequenceRepo struct {
	counters map[string]int64
}

func (r *stubSequenceRepo) Next(_ context.Context, name string) (int64, error) {
	if r.counters == nil {
		r.counters = make(map[string]int64)
	}
	r.counters[name]++
	return r.counters[name], nil
}

func TestNextDocumentNumber_Format(t *testing.T) {
	svc := NewSequenceService(&stubSequenceRepo{})

	number, err := svc.NextDocumentNumber(context.Background(), "pay")
	if err != nil {
		t.Fatalf("NextDocumentNumber returned error: %v", err)
	}
	want := fmt.Sprintf("PAY-%d-00001", time.Now().UTC().Year())
	if number != want {
		t.Fatalf("expected %s, got %s", want, number)
	}
}

func TestNextDocumentNumber_Monotonic(t *testing.T) {
	svc := NewSequenceService(&stubSequenceRepo{})

	first, err := svc.NextDocumentNumber(context.Background(), "exp")
	if err != nil {
		t.Fatalf("NextDocumentNumber returned error: %v", err)
	}
	second, err := svc.NextDocumentNumber(context.Background(), "exp")
	if err != nil {
		t.Fatalf("NextDocumentNumber returned error: %v", err)
	}
	if first == second {
		t.Fatalf("numbers must not repeat: %s", first)
	}
}
