package divsheet

import (
	"github.com/shopspring/decimal"
)

// Record is one row of refreshed data for a ticker.
//
// Optional numbers use decimal.NullDecimal, an invalid value means the provider had no data.
// A blank Record (see Blank) has every field absent except possibly Ticker.
type Record struct {
	Ticker         string
	LongName       string
	Currency       string
	ConversionRate decimal.NullDecimal

	OpenPrice        decimal.NullDecimal
	CurrentPrice     decimal.NullDecimal
	DailyLow         decimal.NullDecimal
	DailyHigh        decimal.NullDecimal
	YearlyLow        decimal.NullDecimal
	YearlyHigh       decimal.NullDecimal
	FiftyDayAvg      decimal.NullDecimal
	TwoHundredDayAvg decimal.NullDecimal

	PayoutRatio    decimal.NullDecimal
	ExDividendDate Date
	RelativeYield  decimal.NullDecimal
	DividendRate   decimal.NullDecimal
}

// Batch is the ordered list of records of one refresh, one per requested ticker.
type Batch []Record

// Blank returns the record written for a ticker that could not be refreshed.
func Blank(ticker string) Record { return Record{Ticker: ticker} }

// IsBlank reports whether r carries no data besides its ticker.
func (r Record) IsBlank() bool {
	for _, f := range OutputFields() {
		if r.Value(f) != nil {
			return false
		}
	}
	return true
}

// Value returns the cell value of field f: a string, a float64 or nil when absent.
func (r Record) Value(f Field) any {
	switch f {
	case LongName:
		return text(r.LongName)
	case Ticker:
		return text(r.Ticker)
	case Currency:
		return text(r.Currency)
	case ExDividendDate:
		return text(r.ExDividendDate.String())
	}
	if d := r.number(f); d.Valid {
		return d.Decimal.InexactFloat64()
	}
	return nil
}

// number returns the numeric field f.
func (r Record) number(f Field) decimal.NullDecimal {
	switch f {
	case ConversionRate:
		return r.ConversionRate
	case OpenPrice:
		return r.OpenPrice
	case CurrentPrice:
		return r.CurrentPrice
	case DailyLow:
		return r.DailyLow
	case DailyHigh:
		return r.DailyHigh
	case YearlyLow:
		return r.YearlyLow
	case YearlyHigh:
		return r.YearlyHigh
	case FiftyDayAvg:
		return r.FiftyDayAvg
	case TwoHundredDayAvg:
		return r.TwoHundredDayAvg
	case PayoutRatio:
		return r.PayoutRatio
	case RelativeYield:
		return r.RelativeYield
	case DividendRate:
		return r.DividendRate
	}
	return decimal.NullDecimal{}
}

// setDecimal sets the numeric field f, it is a no-op for non numeric fields.
func (r *Record) setDecimal(f Field, d decimal.Decimal) {
	v := decimal.NewNullDecimal(d)
	switch f {
	case ConversionRate:
		r.ConversionRate = v
	case OpenPrice:
		r.OpenPrice = v
	case CurrentPrice:
		r.CurrentPrice = v
	case DailyLow:
		r.DailyLow = v
	case DailyHigh:
		r.DailyHigh = v
	case YearlyLow:
		r.YearlyLow = v
	case YearlyHigh:
		r.YearlyHigh = v
	case FiftyDayAvg:
		r.FiftyDayAvg = v
	case TwoHundredDayAvg:
		r.TwoHundredDayAvg = v
	case PayoutRatio:
		r.PayoutRatio = v
	case RelativeYield:
		r.RelativeYield = v
	case DividendRate:
		r.DividendRate = v
	}
}

// Column returns the values of field f, one per record in order.
func (b Batch) Column(f Field) []any {
	values := make([]any, len(b))
	for i, r := range b {
		values[i] = r.Value(f)
	}
	return values
}

func text(s string) any {
	if s == "" {
		return nil
	}
	return s
}
