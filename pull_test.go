package divsheet

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPullEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := &Puller{Provider: NewMockProvider(ctrl), Log: zerolog.Nop()}

	batch, failures := p.Pull(t.Context(), nil, "USD")
	assert.Empty(t, batch)
	assert.Empty(t, failures)
}

func TestPullKeepsOrderAndLength(t *testing.T) {
	tickers := []string{"SAP.DE", "BOGUSXYZ", "AAPL", "FAIL", "AAPL"}
	fake := newFakeProvider()
	fake.quotes["FAIL"] = Values{OpenPrice: D(1), Currency: "USD"}
	fake.errs = map[string]error{"FAIL": context.DeadlineExceeded}
	p := &Puller{Provider: fake, Log: zerolog.Nop()}

	batch, failures := p.Pull(t.Context(), tickers, "USD")
	require.Len(t, batch, len(tickers))
	for i, r := range batch {
		assert.Equal(t, tickers[i], r.Ticker, "row %d", i)
	}
	assert.False(t, batch[0].IsBlank())
	assert.True(t, batch[1].IsBlank())
	assert.False(t, batch[2].IsBlank())
	assert.True(t, batch[3].IsBlank())
	assert.False(t, batch[4].IsBlank())

	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.ErrorIs(t, failures[0], ErrTickerNotFound)
	assert.Equal(t, 3, failures[1].Index)
	assert.ErrorIs(t, failures[1], context.DeadlineExceeded)

	// the EUR rate is asked once for the whole batch.
	assert.Equal(t, 1, fake.fxCalls)
}

func TestPullAppleAndBogus(t *testing.T) {
	fake := newFakeProvider()
	p := &Puller{Provider: fake, Log: zerolog.Nop()}

	batch, _ := p.Pull(t.Context(), []string{"AAPL", "BOGUSXYZ"}, "USD")
	require.Len(t, batch, 2)
	assert.True(t, batch[0].ConversionRate.Decimal.Equal(D(1)))
	assert.True(t, batch[0].CurrentPrice.Valid)
	assert.True(t, batch[1].IsBlank())
	// BOGUSXYZ is asked its opening price only.
	assert.Equal(t, []string{"AAPL", "AAPL", "BOGUSXYZ"}, fake.queries)
}

func TestPullTickerCurrency(t *testing.T) {
	fake := newFakeProvider()
	p := &Puller{Provider: fake, Log: zerolog.Nop()}

	batch, failures := p.Pull(t.Context(), []string{"AAPL", "SAP.DE"}, TickerCurrency)
	require.Empty(t, failures)
	for _, r := range batch {
		assert.True(t, r.ConversionRate.Valid)
		assert.True(t, r.ConversionRate.Decimal.Equal(D(1)), "%s rate = %s", r.Ticker, r.ConversionRate.Decimal)
	}
	assert.Zero(t, fake.fxCalls)
}

func TestPullCancelled(t *testing.T) {
	fake := newFakeProvider()
	p := &Puller{Provider: fake, Log: zerolog.Nop()}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	batch, failures := p.Pull(ctx, []string{"AAPL", "SAP.DE"}, "USD")
	require.Len(t, batch, 2)
	assert.True(t, batch[0].IsBlank())
	assert.True(t, batch[1].IsBlank())
	assert.Len(t, failures, 2)
	assert.Empty(t, fake.queries)
}
