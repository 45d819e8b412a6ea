package divsheet

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConversionRateWithoutProvider(t *testing.T) {
	tests := []struct {
		name           string
		source, target string
	}{
		{"ticker currency", "EUR", TickerCurrency},
		{"ticker currency lowercase", "JPY", " ticker currency "},
		{"unspecified target", "GBP", ""},
		{"same currency", "USD", "USD"},
		{"same currency case", "usd", "USD"},
		{"ticker currency without source", "", TickerCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no expectation: any provider call fails the test.
			c := NewConverter(NewMockFXProvider(ctrl), zerolog.Nop())

			rate, err := c.ConversionRate(t.Context(), tt.source, tt.target)
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.NewFromInt(1)), "rate = %s, want 1", rate)
		})
	}
}

func TestConversionRateFromProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := NewMockFXProvider(ctrl)
	fx.EXPECT().FXRate(gomock.Any(), "EUR", "USD").Return(D(1.08), nil).Times(1)
	c := NewConverter(fx, zerolog.Nop())

	for range 3 {
		rate, err := c.ConversionRate(t.Context(), "EUR", "USD")
		require.NoError(t, err)
		assert.True(t, rate.Equal(D(1.08)), "rate = %s, want 1.08", rate)
	}
}

func TestConversionRateFailures(t *testing.T) {
	unreachable := errors.New("unreachable")
	tests := []struct {
		name   string
		rate   decimal.Decimal
		err    error
		source string
		target error
	}{
		{name: "provider error", err: unreachable, source: "EUR", target: unreachable},
		{name: "zero rate", rate: decimal.Zero, source: "EUR"},
		{name: "negative rate", rate: D(-1), source: "EUR"},
		{name: "no source currency", source: "", target: ErrNoCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fx := NewMockFXProvider(ctrl)
			if tt.source != "" {
				fx.EXPECT().FXRate(gomock.Any(), tt.source, "USD").Return(tt.rate, tt.err).Times(2)
			}
			c := NewConverter(fx, zerolog.Nop())

			// failures are not remembered, each call asks again.
			for range 2 {
				_, err := c.ConversionRate(t.Context(), tt.source, "USD")
				require.Error(t, err)
				if tt.target != nil {
					assert.ErrorIs(t, err, tt.target)
				}
			}
		})
	}
}
