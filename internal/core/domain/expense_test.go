package domain

import "testing"

func TestSumItems_SingleCurrency(t *testing.T) {
	items := []ExpenseItem{
		{Description: "venue", Amount: 10, Currency: "USD"},
		{Description: "catering", Amount: 20, Currency: "USD"},
	}

	total, err := SumItems(items)
	if err != nil {
		t.Fatalf("SumItems returned error: %v", err)
	}
	if total.Amount != 30 {
		t.Fatalf("expected total 30, got %v", total.Amount)
	}
	if total.Currency != "USD" {
		t.Fatalf("expected currency USD, got %s", total.Currency)
	}
}

func TestSumItems_MixedCurrencies(t *testing.T) {
	items := []ExpenseItem{
		{Description: "venue", Amount: 10, Currency: "USD"},
		{Description: "flights", Amount: 20, Currency: "EUR"},
	}

	if _, err := SumItems(items); err != ErrMixedCurrencies {
		t.Fatalf("expected ErrMixedCurrencies, got %v", err)
	}
}

func TestSumItems_Empty(t *testing.T) {
	total, err := SumItems(nil)
	if err != nil {
		t.Fatalf("SumItems returned error: %v", err)
	}
	if total.Amount != 0 || total.Currency != "" {
		t.Fatalf("expected zero total, got %+v", total)
	}
}
