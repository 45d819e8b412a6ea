package divsheet

import (
	"errors"
	"fmt"
)

// ErrTickerNotFound is returned when the provider does not know a ticker.
var ErrTickerNotFound = errors.New("ticker not found")

// ErrNoCurrency is returned when a ticker has no currency but a conversion is required.
var ErrNoCurrency = errors.New("ticker has no currency")

// FetchError reports a failure while pulling the data of a known ticker.
type FetchError struct {
	Ticker string
	Err    error
}

func (e *FetchError) Error() string { return fmt.Sprintf("pulling data for %s: %v", e.Ticker, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// TickerError records why a ticker row was left blank.
type TickerError struct {
	Index  int // position of the ticker in the batch
	Ticker string
	Err    error
}

func (e TickerError) Error() string { return fmt.Sprintf("%s: %v", e.Ticker, e.Err) }
func (e TickerError) Unwrap() error { return e.Err }

// OrchestrationError reports a failure that aborts a whole refresh, usually a
// missing or unreadable piece of the workbook configuration.
type OrchestrationError struct {
	Step string
	Err  error
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("refresh aborted while %s: %v", e.Step, e.Err)
}
func (e *OrchestrationError) Unwrap() error { return e.Err }
