// Package yahoo implements a divsheet.Provider over Yahoo Finance.
package yahoo

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/divsheet"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/forex"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Provider reads quotes from Yahoo Finance.
//
// Quotes are remembered per symbol for the life time of the Provider, which is meant for
// a single refresh. Yahoo does not publish ex-dividend dates nor payout ratios in its
// quotes, those fields are always absent.
type Provider struct {
	Log zerolog.Logger

	getEquity func(symbol string) (*finance.Equity, error)
	getForex  func(symbol string) (*finance.ForexPair, error)
	equities  map[string]*finance.Equity
}

// New returns a Provider querying Yahoo Finance.
func New(log zerolog.Logger) *Provider {
	return &Provider{Log: log, getEquity: equity.Get, getForex: forex.Get}
}

// TickerFields implements divsheet.Provider.
func (p *Provider) TickerFields(ctx context.Context, ticker string, fields ...divsheet.Field) (divsheet.Values, error) {
	q, err := p.quote(ctx, ticker)
	if err != nil {
		return nil, err
	}
	values := make(divsheet.Values)
	if q == nil {
		return values, nil
	}
	for _, f := range fields {
		if v := field(q, f); v != nil {
			values[f] = v
		}
	}
	return values, nil
}

// FXRate implements divsheet.Provider using the FROMTO=X pair.
func (p *Provider) FXRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Decimal{}, err
	}
	symbol := strings.ToUpper(from+to) + "=X"
	pair, err := p.getForex(symbol)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	if pair == nil || pair.RegularMarketPrice <= 0 {
		return decimal.Decimal{}, fmt.Errorf("no rate for currency pair %s", symbol)
	}
	p.Log.Debug().Str("symbol", symbol).Float64("rate", pair.RegularMarketPrice).Msg("yahoo rate")
	return decimal.NewFromFloat(pair.RegularMarketPrice), nil
}

// quote returns the equity quote of ticker, nil if Yahoo does not know it.
func (p *Provider) quote(ctx context.Context, ticker string) (*finance.Equity, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if q, ok := p.equities[symbol]; ok {
		return q, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.Log.Debug().Str("symbol", symbol).Msg("querying yahoo")
	q, err := p.getEquity(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	if p.equities == nil {
		p.equities = make(map[string]*finance.Equity)
	}
	p.equities[symbol] = q
	return q, nil
}

// field returns the value of f in q, nil when Yahoo has nothing for it.
func field(q *finance.Equity, f divsheet.Field) any {
	switch f {
	case divsheet.LongName:
		if q.LongName != "" {
			return q.LongName
		}
		return text(q.ShortName)
	case divsheet.Currency:
		return text(strings.ToUpper(q.CurrencyID))
	case divsheet.OpenPrice:
		return number(q.RegularMarketOpen)
	case divsheet.CurrentPrice:
		return number(q.RegularMarketPrice)
	case divsheet.DailyLow:
		return number(q.RegularMarketDayLow)
	case divsheet.DailyHigh:
		return number(q.RegularMarketDayHigh)
	case divsheet.YearlyLow:
		return number(q.FiftyTwoWeekLow)
	case divsheet.YearlyHigh:
		return number(q.FiftyTwoWeekHigh)
	case divsheet.FiftyDayAvg:
		return number(q.FiftyDayAverage)
	case divsheet.TwoHundredDayAvg:
		return number(q.TwoHundredDayAverage)
	case divsheet.DividendRate:
		return number(q.TrailingAnnualDividendRate)
	case divsheet.RelativeYield:
		return number(q.TrailingAnnualDividendYield)
	}
	return nil
}

// number returns x as a decimal, nil for zero which is how Yahoo reports missing data.
func number(x float64) any {
	if x == 0 {
		return nil
	}
	return decimal.NewFromFloat(x)
}

func text(s string) any {
	if s == "" {
		return nil
	}
	return s
}
