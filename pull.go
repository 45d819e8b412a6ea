package divsheet

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Puller pulls the data of a list of tickers, one at a time.
type Puller struct {
	Provider Provider
	Log      zerolog.Logger
}

// Pull returns one record per ticker, in the same order.
//
// A ticker that cannot be pulled yields a blank record and a TickerError, it never stops
// the batch. The batch is always as long as tickers so that rows stay aligned with the
// ticker column. If ctx is done, the remaining tickers are left blank.
func (p *Puller) Pull(ctx context.Context, tickers []string, target string) (Batch, []TickerError) {
	if len(tickers) == 0 {
		return Batch{}, nil
	}
	fetcher := &Fetcher{
		Provider:  p.Provider,
		Converter: NewConverter(p.Provider, p.Log),
		Target:    target,
		Log:       p.Log,
	}

	batch := make(Batch, 0, len(tickers))
	var failures []TickerError
	for i, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			batch = append(batch, Blank(ticker))
			failures = append(failures, TickerError{Index: i, Ticker: ticker, Err: err})
			continue
		}
		p.Log.Info().Msg("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
		r, err := fetcher.Fetch(ctx, ticker)
		if err != nil {
			if errors.Is(err, ErrTickerNotFound) {
				p.Log.Warn().Str("ticker", ticker).Msgf("Ticker: %s not found. Please check", ticker)
			} else {
				p.Log.Error().Err(err).Str("ticker", ticker).Msgf("Error pulling data for %s", ticker)
			}
			batch = append(batch, Blank(ticker))
			failures = append(failures, TickerError{Index: i, Ticker: ticker, Err: err})
			continue
		}
		batch = append(batch, r)
	}
	return batch, failures
}
