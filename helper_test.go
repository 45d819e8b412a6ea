package divsheet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// fakeProvider serves fixed values and records the queries it receives.
type fakeProvider struct {
	quotes map[string]Values
	rates  map[string]decimal.Decimal // keyed by pair, e.g. "EURUSD"
	errs   map[string]error           // returned by detail queries of a ticker

	queries []string // one entry per TickerFields call, the ticker
	fxCalls int
}

func (p *fakeProvider) TickerFields(_ context.Context, ticker string, fields ...Field) (Values, error) {
	p.queries = append(p.queries, ticker)
	if !(len(fields) == 1 && fields[0] == OpenPrice) {
		if err := p.errs[ticker]; err != nil {
			return nil, err
		}
	}
	out := make(Values)
	for _, f := range fields {
		if v, ok := p.quotes[ticker][f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

func (p *fakeProvider) FXRate(_ context.Context, from, to string) (decimal.Decimal, error) {
	p.fxCalls++
	rate, ok := p.rates[from+to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("unknown pair %s%s", from, to)
	}
	return rate, nil
}

// D is a helper for test to create decimal from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// aapl returns a fully populated quote in USD.
func aapl() Values {
	return Values{
		LongName:         "Apple Inc.",
		Currency:         "USD",
		OpenPrice:        D(189.5),
		CurrentPrice:     D(191.2),
		DailyLow:         D(188.9),
		DailyHigh:        D(192),
		YearlyLow:        D(164.1),
		YearlyHigh:       D(199.6),
		FiftyDayAvg:      D(185.3),
		TwoHundredDayAvg: D(180.7),
		PayoutRatio:      D(0.15),
		ExDividendDate:   NewDate(2024, time.February, 9),
		RelativeYield:    D(0.005),
		DividendRate:     D(0.96),
	}
}

// sap returns a partially populated quote in EUR, without any dividend data.
func sap() Values {
	return Values{
		Currency:     "EUR",
		OpenPrice:    D(170),
		CurrentPrice: D(172.5),
	}
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		quotes: map[string]Values{"AAPL": aapl(), "SAP.DE": sap()},
		rates:  map[string]decimal.Decimal{"EURUSD": D(1.08)},
	}
}
