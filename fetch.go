package divsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// detailFields are queried once a ticker is known to exist.
var detailFields = []Field{
	LongName,
	RelativeYield,
	Currency,
	ExDividendDate,
	PayoutRatio,
	CurrentPrice,
	DailyLow,
	DailyHigh,
	YearlyLow,
	YearlyHigh,
	FiftyDayAvg,
	TwoHundredDayAvg,
	DividendRate,
}

// Fetcher pulls the data of a single ticker.
type Fetcher struct {
	Provider  Provider
	Converter *Converter
	Target    string // display currency for the whole batch
	Log       zerolog.Logger
}

// Fetch returns the record of ticker.
//
// The opening price decides whether the provider knows the ticker: when it is missing
// Fetch returns ErrTickerNotFound without any other query. Once the ticker is known, any
// failure returns a *FetchError and no record. Other fields are best effort and may
// be absent from the record.
func (f *Fetcher) Fetch(ctx context.Context, ticker string) (Record, error) {
	f.Log.Info().Str("ticker", ticker).Msgf("Pulling financial data for: %s ...", ticker)
	open, err := f.Provider.TickerFields(ctx, ticker, OpenPrice)
	if err != nil {
		return Record{}, &FetchError{Ticker: ticker, Err: err}
	}
	openPrice, ok, err := open.Decimal(OpenPrice)
	if err != nil {
		return Record{}, &FetchError{Ticker: ticker, Err: err}
	}
	if !ok {
		return Record{}, fmt.Errorf("%s: %w", ticker, ErrTickerNotFound)
	}

	values, err := f.Provider.TickerFields(ctx, ticker, detailFields...)
	if err != nil {
		return Record{}, &FetchError{Ticker: ticker, Err: err}
	}
	r, err := assemble(ticker, values)
	if err != nil {
		return Record{}, &FetchError{Ticker: ticker, Err: err}
	}
	r.setDecimal(OpenPrice, openPrice)

	rate, err := f.Converter.ConversionRate(ctx, r.Currency, f.Target)
	if err != nil {
		return Record{}, &FetchError{Ticker: ticker, Err: err}
	}
	r.setDecimal(ConversionRate, rate)
	f.Log.Info().Str("ticker", ticker).Msgf("Successfully pulled financial data for: %s", ticker)
	return r, nil
}

// assemble builds a record out of provider values.
func assemble(ticker string, values Values) (r Record, err error) {
	r.Ticker = ticker
	var errs error
	for _, field := range detailFields {
		switch field {
		case LongName:
			r.LongName, err = values.Text(field)
		case Currency:
			r.Currency, err = values.Text(field)
		case ExDividendDate:
			r.ExDividendDate, err = values.Date(field)
		default:
			var d decimal.Decimal
			var ok bool
			d, ok, err = values.Decimal(field)
			if ok {
				r.setDecimal(field, d)
			}
		}
		errs = errors.Join(errs, err)
	}
	return r, errs
}
