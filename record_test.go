package divsheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBlank(t *testing.T) {
	r := Blank("BOGUSXYZ")
	if !r.IsBlank() {
		t.Error("Blank() record is not blank")
	}
	for _, f := range OutputFields() {
		if v := r.Value(f); v != nil {
			t.Errorf("Blank().Value(%s) = %v, want nil", f, v)
		}
	}
	if got := r.Value(Ticker); got != "BOGUSXYZ" {
		t.Errorf("Blank().Value(ticker) = %v, want BOGUSXYZ", got)
	}
}

func TestRecordValue(t *testing.T) {
	r := Record{
		Ticker:         "AAPL",
		LongName:       "Apple Inc.",
		ConversionRate: decimal.NewNullDecimal(decimal.NewFromInt(1)),
		CurrentPrice:   decimal.NewNullDecimal(decimal.RequireFromString("191.25")),
		ExDividendDate: NewDate(2024, time.February, 9),
	}
	if r.IsBlank() {
		t.Fatal("record should not be blank")
	}
	tests := []struct {
		field Field
		want  any
	}{
		{LongName, "Apple Inc."},
		{Currency, nil},
		{ConversionRate, 1.0},
		{CurrentPrice, 191.25},
		{OpenPrice, nil},
		{ExDividendDate, "2024-02-09"},
	}
	for _, tt := range tests {
		if got := r.Value(tt.field); got != tt.want {
			t.Errorf("Value(%s) = %#v, want %#v", tt.field, got, tt.want)
		}
	}
}

func TestBatchColumn(t *testing.T) {
	b := Batch{
		{Ticker: "AAPL", Currency: "USD"},
		Blank("BOGUSXYZ"),
		{Ticker: "SAP.DE", Currency: "EUR"},
	}
	got := b.Column(Currency)
	want := []any{"USD", nil, "EUR"}
	if len(got) != len(want) {
		t.Fatalf("Column() returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
