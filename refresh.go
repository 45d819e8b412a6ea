package divsheet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TimestampFormat is the layout of the refresh timestamp, e.g. Jan-05-2024_14:32:07.
const TimestampFormat = "Jan-02-2006_15:04:05"

// Timestamp formats t as a refresh timestamp.
func Timestamp(t time.Time) string { return t.Format(TimestampFormat) }

// Report is the outcome of a refresh.
type Report struct {
	RunID          uuid.UUID
	Timestamp      string
	TargetCurrency string
	Span           RangeSpan
	Tickers        []string
	Batch          Batch
	Cleared        int           // number of cleared columns
	Failures       []TickerError // tickers left blank
}

// Refresher refreshes the tracker sheet.
type Refresher struct {
	RunID    uuid.UUID // a new one for each run if zero
	Sheet    Sheet
	Provider Provider
	Log      zerolog.Logger
	Now      func() time.Time // defaults to time.Now
}

// Run reads the configuration cells, clears the previous data, pulls fresh data and writes
// it back.
//
// Failures of single tickers only blank their row. Anything else aborts the run with an
// *OrchestrationError, there is no rollback of what was already cleared.
func (r *Refresher) Run(ctx context.Context) (*Report, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	report := &Report{RunID: r.RunID}
	if report.RunID == uuid.Nil {
		report.RunID = uuid.New()
	}

	target, err := r.Sheet.ReadNamedRange(TargetCurrencyName)
	if err != nil {
		return report, &OrchestrationError{Step: "reading target currency", Err: err}
	}
	report.TargetCurrency = strings.TrimSpace(target.Value)

	anchor, err := r.Sheet.ReadNamedRange(TickerName)
	if err != nil {
		return report, &OrchestrationError{Step: "locating ticker column", Err: err}
	}
	tickerCol := ColumnOf(Ticker)
	last, err := r.Sheet.LastRow(tickerCol)
	if err != nil {
		return report, &OrchestrationError{Step: "locating last ticker", Err: err}
	}
	report.Span = RangeSpan{Start: anchor.Row + 1, Last: last}

	report.Timestamp = Timestamp(now())
	if err := r.Sheet.WriteNamedRange(TimestampName, report.Timestamp); err != nil {
		return report, &OrchestrationError{Step: "writing timestamp", Err: err}
	}

	tickers, err := r.Sheet.ReadColumn(tickerCol, report.Span.Start)
	if err != nil {
		return report, &OrchestrationError{Step: "reading tickers", Err: err}
	}
	report.Tickers = tickers

	if !report.Span.Empty() {
		r.Log.Info().Int("from", report.Span.Start).Int("to", report.Span.Last).
			Msgf("Clear Contents from row %d to %d", report.Span.Start, report.Span.Last)
	}
	report.Cleared, err = Clear(r.Sheet, report.Span)
	if err != nil {
		return report, &OrchestrationError{Step: "clearing previous data", Err: err}
	}

	puller := &Puller{Provider: r.Provider, Log: r.Log}
	report.Batch, report.Failures = puller.Pull(ctx, tickers, report.TargetCurrency)

	if len(report.Batch) > 0 {
		r.Log.Info().Msg("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
		r.Log.Info().Int("rows", len(report.Batch)).Msg("Writing data to the sheet...")
	}
	if err := Write(r.Sheet, report.Batch, report.Span.Start); err != nil {
		return report, &OrchestrationError{Step: "writing fresh data", Err: err}
	}
	return report, nil
}
