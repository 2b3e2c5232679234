package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
	"github.com/venuelabs/matching-venue/risk"
)

// runSpreadMonitor periodically logs the top of book.
func runSpreadMonitor(ctx context.Context, engine *matching.Engine, symbolID uint32, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			orderBook := engine.OrderBook(symbolID)
			if orderBook == nil {
				continue
			}
			top := orderBook.TopOfBook()

			fields := []zap.Field{zap.String("symbol", top.Symbol)}
			if top.HasBid {
				fields = append(fields,
					zap.String("bid", top.BidPrice.ToFloatString()),
					zap.String("bid_volume", top.BidVolume.ToFloatString()),
				)
			}
			if top.HasAsk {
				fields = append(fields,
					zap.String("ask", top.AskPrice.ToFloatString()),
					zap.String("ask_volume", top.AskVolume.ToFloatString()),
				)
			}
			if spread, ok := top.Spread(); ok {
				fields = append(fields, zap.String("spread", spread.ToFloatString()))
			}
			if !top.LastTradePrice.IsZero() {
				fields = append(fields, zap.String("last_trade", top.LastTradePrice.ToFloatString()))
			}
			log.Info("top of book", fields...)
		}
	}
}

// runPositionReporter periodically marks positions at the book mid
// (falling back to the last trade price) and logs every open position.
func runPositionReporter(ctx context.Context, engine *matching.Engine, riskManager *risk.Manager, symbolID uint32, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			orderBook := engine.OrderBook(symbolID)
			if orderBook == nil {
				continue
			}

			top := orderBook.TopOfBook()
			if mark, ok := top.Mid(); ok {
				riskManager.SetMarkPrice(symbolID, mark)
			} else if !top.LastTradePrice.IsZero() {
				riskManager.SetMarkPrice(symbolID, top.LastTradePrice)
			}

			for _, snapshot := range riskManager.Snapshots() {
				if snapshot.Quantity.IsZero() && snapshot.RealizedPnL.IsZero() {
					continue
				}
				log.Info("position",
					zap.Uint64("account_id", snapshot.AccountID),
					zap.String("quantity", snapshot.Quantity.ToFloatString()),
					zap.String("avg_entry_price", snapshot.AvgEntryPrice.ToFloatString()),
					zap.String("realized_pnl", snapshot.RealizedPnL.ToFloatString()),
					zap.String("unrealized_pnl", snapshot.UnrealizedPnL.ToFloatString()),
				)
			}
		}
	}
}
