// Package eodhd implements a divsheet.Provider over the eodhd.com API.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/divsheet"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the eodhd API.
const DefaultBaseURL = "https://eodhd.com/api"

// DefaultExchange is the exchange code appended to tickers that have none.
const DefaultExchange = "US"

// realtime fields are read from the live quote.
var realtime = map[divsheet.Field]string{
	divsheet.OpenPrice:    "$.open",
	divsheet.CurrentPrice: "$.close",
	divsheet.DailyLow:     "$.low",
	divsheet.DailyHigh:    "$.high",
}

// fundamentals fields change at most once a day, they are read from the cached
// fundamentals document.
var fundamentals = map[divsheet.Field]string{
	divsheet.LongName:         "$.General.Name",
	divsheet.Currency:         "$.General.CurrencyCode",
	divsheet.YearlyLow:        `$.Technicals["52WeekLow"]`,
	divsheet.YearlyHigh:       `$.Technicals["52WeekHigh"]`,
	divsheet.FiftyDayAvg:      `$.Technicals["50DayMA"]`,
	divsheet.TwoHundredDayAvg: `$.Technicals["200DayMA"]`,
	divsheet.PayoutRatio:      "$.SplitsDividends.PayoutRatio",
	divsheet.ExDividendDate:   "$.SplitsDividends.ExDividendDate",
	divsheet.DividendRate:     "$.SplitsDividends.ForwardAnnualDividendRate",
	divsheet.RelativeYield:    "$.Highlights.DividendYield",
}

// Provider reads ticker data and currency rates from eodhd.com.
//
// Documents are remembered for the life time of the Provider, it is meant for a single
// refresh and is not safe for concurrent use.
type Provider struct {
	APIKey   string
	BaseURL  string       // defaults to DefaultBaseURL
	Exchange string       // defaults to DefaultExchange
	CacheDir string       // daily cache of fundamentals, no cache if empty
	Client   *http.Client // defaults to http.DefaultClient
	Log      zerolog.Logger

	docs map[string]any
}

// New returns a Provider using apiKey.
func New(apiKey string) *Provider { return &Provider{APIKey: apiKey, Log: zerolog.Nop()} }

// Symbol returns the eodhd symbol of ticker: tickers without an exchange get the default one.
func (p *Provider) Symbol(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if strings.Contains(ticker, ".") {
		return ticker
	}
	exchange := p.Exchange
	if exchange == "" {
		exchange = DefaultExchange
	}
	return ticker + "." + exchange
}

// TickerFields implements divsheet.Provider.
//
// An unknown ticker is not an error, it simply has no fields.
func (p *Provider) TickerFields(ctx context.Context, ticker string, fields ...divsheet.Field) (divsheet.Values, error) {
	symbol := p.Symbol(ticker)
	values := make(divsheet.Values)
	var errs []error
	for _, f := range fields {
		var (
			path   string
			cached bool
		)
		if path = realtime[f]; path == "" {
			path, cached = fundamentals[f], true
		}
		if path == "" {
			continue // not provided by eodhd
		}
		doc, err := p.document(ctx, endpoint(cached), symbol, cached)
		if errors.Is(err, errNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		v, err := read(doc, path, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != nil {
			values[f] = v
		}
	}
	return values, errors.Join(errs...)
}

// FXRate implements divsheet.Provider using the FOREX live quote.
func (p *Provider) FXRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	symbol := fmt.Sprintf("%s%s.FOREX", strings.ToUpper(from), strings.ToUpper(to))
	doc, err := p.document(ctx, "real-time", symbol, false)
	if errors.Is(err, errNotFound) {
		return decimal.Decimal{}, fmt.Errorf("unknown currency pair %s", symbol)
	}
	if err != nil {
		return decimal.Decimal{}, err
	}
	v, err := read(doc, "$.close", divsheet.ConversionRate)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rate, ok := v.(decimal.Decimal)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no rate for currency pair %s", symbol)
	}
	return rate, nil
}

func endpoint(cached bool) string {
	if cached {
		return "fundamentals"
	}
	return "real-time"
}

// document returns the json document of symbol from endpoint, fetching it once.
func (p *Provider) document(ctx context.Context, endpoint, symbol string, cached bool) (any, error) {
	key := endpoint + "/" + symbol
	if doc, ok := p.docs[key]; ok {
		if doc == nil {
			return nil, errNotFound
		}
		return doc, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	addr := fmt.Sprintf("%s/%s/%s?fmt=json&api_token=%s", strings.TrimSuffix(base, "/"), endpoint, url.PathEscape(symbol), url.QueryEscape(p.APIKey))

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	if cached && p.CacheDir != "" {
		client = newDailyCachingClient(client, p.CacheDir, p.Log)
	}
	p.Log.Debug().Str("endpoint", endpoint).Str("symbol", symbol).Msg("querying eodhd")

	var doc any
	err := jwget(ctx, client, addr, &doc)
	if err != nil && !errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("eodhd %s %s: %w", endpoint, symbol, err)
	}
	if p.docs == nil {
		p.docs = make(map[string]any)
	}
	if errors.Is(err, errNotFound) {
		doc = nil
	}
	p.docs[key] = doc
	if doc == nil {
		return nil, errNotFound
	}
	return doc, nil
}

// read extracts the value of field f at path in doc.
//
// Missing paths, null and "NA" are absent and return nil.
func read(doc any, path string, f divsheet.Field) (any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, nil // unknown key
	}
	// jsonpath may return a list of one answer.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, nil
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case nil:
		return nil, nil
	case float64:
		if f == divsheet.LongName || f == divsheet.Currency || f == divsheet.ExDividendDate {
			return nil, fmt.Errorf("malformed %s: %v is not a text", f, v)
		}
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "NA") {
			return nil, nil
		}
		switch f {
		case divsheet.LongName, divsheet.Currency:
			return s, nil
		case divsheet.ExDividendDate:
			d, err := divsheet.ParseDate(s)
			if err != nil {
				return nil, nil // eodhd uses 0000-00-00 for no date
			}
			return d, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("malformed %s: %q is not a number", f, s)
		}
		return d, nil
	}
	return nil, fmt.Errorf("malformed %s: unexpected %T", f, jval)
}
