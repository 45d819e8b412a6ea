// Package divsheet refreshes a spreadsheet based investment tracker.
//
// The tracker sheet lists ticker symbols in a fixed column. A refresh reads them, pulls
// current prices and dividend metrics for each ticker from a Provider, converts them into
// the target display currency, and writes the results back in fixed columns (see ColumnOf).
//
// The main pieces are:
//   - Converter: the multiplier from a ticker's currency to the display currency.
//   - Fetcher: the data of a single ticker, or ErrTickerNotFound, or a *FetchError.
//   - Puller: one record per ticker, in order, blank rows for failures.
//   - Clear and Write: the read-modify-write contract against the Sheet columns.
//   - Refresher: the whole run, driven by the named ranges of the workbook.
//
// Sheet and Provider are interfaces: the xlsx, yahoo and eodhd packages implement them,
// and MemSheet is an in-memory Sheet.
package divsheet
