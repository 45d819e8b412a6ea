package divsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TickerCurrency is the target currency value asking to display every ticker in its own currency.
const TickerCurrency = "TICKER CURRENCY"

// IsTickerCurrency reports whether target asks to keep each ticker's own currency.
// An empty target means the same.
func IsTickerCurrency(target string) bool {
	target = strings.TrimSpace(target)
	return target == "" || strings.EqualFold(target, TickerCurrency)
}

// Converter computes the multiplier that converts a ticker's prices into the display currency.
//
// Rates are remembered for the life time of the Converter, which is one refresh.
type Converter struct {
	Provider FXProvider
	Log      zerolog.Logger

	rates map[string]decimal.Decimal
}

// NewConverter returns a Converter using p for live rates.
func NewConverter(p FXProvider, log zerolog.Logger) *Converter {
	return &Converter{Provider: p, Log: log}
}

// ConversionRate returns the rate to convert an amount in source currency into target currency.
//
// It is 1 when target is TickerCurrency (or empty) or identical to source. Otherwise the rate
// comes from the provider, and a provider failure is returned as is: the rate is never
// defaulted to 1.
func (c *Converter) ConversionRate(ctx context.Context, source, target string) (decimal.Decimal, error) {
	if IsTickerCurrency(target) {
		c.Log.Info().Str("currency", source).Msgf("Display values in %s", source)
		return decimal.NewFromInt(1), nil
	}
	source, target = strings.TrimSpace(source), strings.TrimSpace(target)
	if source == "" {
		return decimal.Decimal{}, fmt.Errorf("cannot convert to %s: %w", target, ErrNoCurrency)
	}
	if strings.EqualFold(source, target) {
		return decimal.NewFromInt(1), nil
	}

	pair := strings.ToUpper(source + target)
	if rate, ok := c.rates[pair]; ok {
		return rate, nil
	}
	rate, err := c.Provider.FXRate(ctx, source, target)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("conversion rate from %s to %s: %w", source, target, err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("conversion rate from %s to %s: invalid rate %s", source, target, rate)
	}
	if c.rates == nil {
		c.rates = make(map[string]decimal.Decimal)
	}
	c.rates[pair] = rate
	c.Log.Info().Str("from", source).Str("to", target).Stringer("rate", rate).
		Msgf("Conversion Rate from %s to %s: %s", source, target, rate)
	return rate, nil
}
