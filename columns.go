package divsheet

import (
	"fmt"
	"strings"
)

// Field identifies one column of the tracker sheet.
type Field int

// Fields in registry order.
const (
	LongName Field = iota
	Ticker
	CurrentPrice
	Currency
	ConversionRate
	OpenPrice
	DailyLow
	DailyHigh
	YearlyLow
	YearlyHigh
	FiftyDayAvg
	TwoHundredDayAvg
	PayoutRatio
	ExDividendDate
	RelativeYield
	DividendRate
	numFields
)

var fieldNames = [numFields]string{
	LongName:         "long_name",
	Ticker:           "ticker",
	CurrentPrice:     "current_price",
	Currency:         "currency",
	ConversionRate:   "conversion_rate",
	OpenPrice:        "open_price",
	DailyLow:         "daily_low",
	DailyHigh:        "daily_high",
	YearlyLow:        "yearly_low",
	YearlyHigh:       "yearly_high",
	FiftyDayAvg:      "fifty_day_moving_avg",
	TwoHundredDayAvg: "twohundred_day_moving_avg",
	PayoutRatio:      "payout_ratio",
	ExDividendDate:   "exdividend_date",
	RelativeYield:    "yield_rel",
	DividendRate:     "dividend_rate",
}

// columnMap is the 1-based column of each field. It never changes at runtime.
var columnMap = [numFields]int{
	LongName:         1,
	Ticker:           2,
	CurrentPrice:     5,
	Currency:         6,
	ConversionRate:   7,
	OpenPrice:        8,
	DailyLow:         9,
	DailyHigh:        10,
	YearlyLow:        11,
	YearlyHigh:       12,
	FiftyDayAvg:      13,
	TwoHundredDayAvg: 14,
	PayoutRatio:      19,
	ExDividendDate:   20,
	RelativeYield:    21,
	DividendRate:     22,
}

// String returns the snake case name of the field.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField returns the field named s.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range fieldNames {
		if name == s {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// ColumnOf returns the 1-based sheet column holding field f.
func ColumnOf(f Field) int { return columnMap[f] }

// Fields returns every registered field in registry order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// OutputFields returns the fields written by a refresh, that is every field but Ticker.
// Ticker is the input key and is never cleared nor overwritten.
func OutputFields() []Field {
	fields := make([]Field, 0, numFields-1)
	for _, f := range Fields() {
		if f != Ticker {
			fields = append(fields, f)
		}
	}
	return fields
}
