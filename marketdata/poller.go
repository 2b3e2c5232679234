package marketdata

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
)

// OrderSubmitter accepts orders for matching. Implemented by matching.Engine.
type OrderSubmitter interface {
	SubmitOrder(order matching.Order) (matching.Ack, error)
}

// Poller periodically fetches intraday bars and seeds the book with
// synthetic passive liquidity derived from them.
type Poller struct {
	client    *Client
	submitter OrderSubmitter
	log       *zap.Logger

	symbol    matching.Symbol
	ticker    string
	tickSize  matching.Uint
	accountID uint64
	ids       matching.Sequence
	interval  time.Duration

	// maxBars bounds how many bars of one response are replayed into the book.
	maxBars int
}

// NewPoller creates a poller feeding the submitter on behalf of the given
// liquidity account. The ticker names the instrument upstream, the symbol
// names it in the venue.
func NewPoller(
	client *Client,
	submitter OrderSubmitter,
	symbol matching.Symbol,
	ticker string,
	tickSize matching.Uint,
	accountID uint64,
	ids matching.Sequence,
	interval time.Duration,
	log *zap.Logger,
) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	if ids == nil {
		ids = matching.NewSequence()
	}
	return &Poller{
		client:    client,
		submitter: submitter,
		log:       log,
		symbol:    symbol,
		ticker:    ticker,
		tickSize:  tickSize,
		accountID: accountID,
		ids:       ids,
		interval:  interval,
		maxBars:   100,
	}
}

// Run polls until the context is cancelled. The first poll happens after one
// full interval so startup is never blocked on the upstream provider.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	bars, err := p.client.FetchIntraday(ctx, p.ticker)
	if err != nil {
		p.log.Error("market data fetch failed",
			zap.String("ticker", p.ticker),
			zap.Error(err),
		)
		return
	}

	if len(bars) > p.maxBars {
		bars = bars[:p.maxBars]
	}
	p.log.Info("received market data",
		zap.String("ticker", p.ticker),
		zap.Int("bars", len(bars)),
	)

	submitted := 0
	for _, bar := range bars {
		for _, order := range bar.SyntheticOrders(p.symbol, p.tickSize, p.ids, p.accountID) {
			ack, err := p.submitter.SubmitOrder(order)
			if err != nil {
				p.log.Warn("synthetic order rejected",
					zap.Uint64("order_id", ack.OrderID),
					zap.Error(err),
				)
				continue
			}
			submitted++
		}
	}
	p.log.Debug("synthetic liquidity submitted",
		zap.String("symbol", p.symbol.Name()),
		zap.Int("orders", submitted),
	)
}
