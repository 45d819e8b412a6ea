package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/divsheet"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Banner is the title of every refresh report.
const Banner = "Dividend & Portfolio Overview"

// RefreshMarkdown renders the outcome of a refresh.
func RefreshMarkdown(r *divsheet.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(Banner)
	target := r.TargetCurrency
	if divsheet.IsTickerCurrency(target) {
		target = "ticker currency"
	}
	doc.BulletList(
		fmt.Sprintf("Refreshed on %s", r.Timestamp),
		fmt.Sprintf("Display currency: %s", target),
		fmt.Sprintf("Tickers: %d, failed: %d", len(r.Tickers), len(r.Failures)),
		fmt.Sprintf("Run: %s", r.RunID),
	)

	if len(r.Batch) > 0 {
		doc.H2("Tickers")
		rows := make([][]string, 0, len(r.Batch))
		for i, rec := range r.Batch {
			rows = append(rows, []string{
				strconv.Itoa(r.Span.Start + i),
				rec.Ticker,
				rec.LongName,
				formatPrice(rec.CurrentPrice, rec.Currency),
				formatPrice(converted(rec), displayCurrency(rec, r.TargetCurrency)),
				formatPercent(rec.RelativeYield),
				rec.ExDividendDate.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Row", "Ticker", "Name", "Price", "Converted", "Yield", "Ex-Dividend"},
			Rows:   rows,
		})
	}

	if len(r.Failures) > 0 {
		doc.H2("Failures")
		rows := make([][]string, 0, len(r.Failures))
		for _, f := range r.Failures {
			reason := f.Err.Error()
			if errors.Is(f.Err, divsheet.ErrTickerNotFound) {
				reason = "not found, please check"
			}
			rows = append(rows, []string{strconv.Itoa(r.Span.Start + f.Index), f.Ticker, reason})
		}
		doc.Table(md.TableSet{Header: []string{"Row", "Ticker", "Reason"}, Rows: rows})
	}

	return doc.String()
}

// RecordsMarkdown renders records side by side, one column per ticker, one row per field.
func RecordsMarkdown(batch divsheet.Batch, target string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quotes")
	if len(batch) == 0 {
		doc.PlainText("No ticker.")
		return doc.String()
	}
	if !divsheet.IsTickerCurrency(target) {
		doc.PlainText(fmt.Sprintf("Conversion rates to %s.", target))
	}

	header := []string{"Field"}
	for _, rec := range batch {
		header = append(header, rec.Ticker)
	}
	var rows [][]string
	for _, f := range divsheet.OutputFields() {
		row := []string{f.String()}
		for _, rec := range batch {
			row = append(row, cell(rec, f))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

// cell formats field f of rec.
func cell(rec divsheet.Record, f divsheet.Field) string {
	switch v := rec.Value(f).(type) {
	case nil:
		return ""
	case string:
		return v
	}
	switch f {
	case divsheet.RelativeYield, divsheet.PayoutRatio:
		return formatPercent(numeric(rec, f))
	case divsheet.ConversionRate:
		return rec.ConversionRate.Decimal.String()
	}
	return formatPrice(numeric(rec, f), rec.Currency)
}

func numeric(rec divsheet.Record, f divsheet.Field) decimal.NullDecimal {
	v, ok := rec.Value(f).(float64)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// converted returns the current price in display currency.
func converted(rec divsheet.Record) decimal.NullDecimal {
	if !rec.CurrentPrice.Valid || !rec.ConversionRate.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(rec.CurrentPrice.Decimal.Mul(rec.ConversionRate.Decimal))
}

func displayCurrency(rec divsheet.Record, target string) string {
	if divsheet.IsTickerCurrency(target) {
		return rec.Currency
	}
	return target
}

// formatPrice formats an amount with its currency symbol when the currency is known.
func formatPrice(d decimal.NullDecimal, currency string) string {
	if !d.Valid {
		return ""
	}
	if money.GetCurrency(currency) == nil {
		return strings.TrimSpace(d.Decimal.StringFixed(2) + " " + currency)
	}
	return money.NewFromFloat(d.Decimal.InexactFloat64(), currency).Display()
}

// formatPercent formats a ratio as a percentage.
func formatPercent(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
