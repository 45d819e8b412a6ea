package divsheet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=provider.go -destination=provider_mock_test.go -package=divsheet

// Provider is a financial data provider.
//
// Any field may be unavailable for a given ticker: it is simply missing from the returned
// Values. Errors are reserved for failures to talk to the provider.
type Provider interface {
	// TickerFields returns the requested fields for ticker.
	TickerFields(ctx context.Context, ticker string, fields ...Field) (Values, error)
	// FXRate returns the spot rate to convert one unit of from into to.
	FXRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// FXProvider provides currency pair spot rates.
type FXProvider interface {
	FXRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Values holds the fields returned by a Provider.
//
// Numeric fields are decimal.Decimal, ExDividendDate is a Date, and text fields are string.
type Values map[Field]any

// Has reports whether field f is available.
func (v Values) Has(f Field) bool {
	_, ok := v[f]
	return ok
}

// Decimal returns the numeric field f. ok is false when the field is absent.
// A value of the wrong type is an error, it means the provider is broken.
func (v Values) Decimal(f Field) (d decimal.Decimal, ok bool, err error) {
	x, ok := v[f]
	if !ok {
		return d, false, nil
	}
	d, ok = x.(decimal.Decimal)
	if !ok {
		return d, false, fmt.Errorf("malformed %s: %T is not a number", f, x)
	}
	return d, true, nil
}

// Text returns the text field f, "" when the field is absent.
func (v Values) Text(f Field) (string, error) {
	x, ok := v[f]
	if !ok {
		return "", nil
	}
	s, ok := x.(string)
	if !ok {
		return "", fmt.Errorf("malformed %s: %T is not a text", f, x)
	}
	return s, nil
}

// Date returns the date field f, the zero Date when the field is absent.
func (v Values) Date(f Field) (Date, error) {
	x, ok := v[f]
	if !ok {
		return Date{}, nil
	}
	d, ok := x.(Date)
	if !ok {
		return Date{}, fmt.Errorf("malformed %s: %T is not a date", f, x)
	}
	return d, nil
}
