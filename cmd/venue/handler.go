package main

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/api"
	"github.com/venuelabs/matching-venue/feed"
	"github.com/venuelabs/matching-venue/matching"
	"github.com/venuelabs/matching-venue/risk"
)

var _ matching.Handler = &venueHandler{}

// venueHandler fans engine events out to the venue's collaborators:
// executed trades update positions, feed the Kafka topic and the
// websocket stream; everything else is counted and logged.
type venueHandler struct {
	log       *zap.Logger
	risk      *risk.Manager
	server    *api.Server
	publisher *feed.Publisher

	priceLevelUpdates uint64
	orderUpdates      uint64
	executedTrades    uint64
	rejections        uint64
	errors            uint64
}

func (h *venueHandler) OnAddOrderBook(orderBook *matching.OrderBook) {
	h.log.Info("order book added", zap.String("symbol", orderBook.Symbol().Name()))
}

func (h *venueHandler) OnUpdateOrderBook(orderBook *matching.OrderBook) {}

func (h *venueHandler) OnDeleteOrderBook(orderBook *matching.OrderBook) {
	h.log.Info("order book deleted", zap.String("symbol", orderBook.Symbol().Name()))
}

func (h *venueHandler) OnAddPriceLevel(orderBook *matching.OrderBook, update matching.PriceLevelUpdate) {
	atomic.AddUint64(&h.priceLevelUpdates, 1)
}

func (h *venueHandler) OnUpdatePriceLevel(orderBook *matching.OrderBook, update matching.PriceLevelUpdate) {
	atomic.AddUint64(&h.priceLevelUpdates, 1)
}

func (h *venueHandler) OnDeletePriceLevel(orderBook *matching.OrderBook, update matching.PriceLevelUpdate) {
	atomic.AddUint64(&h.priceLevelUpdates, 1)
}

func (h *venueHandler) OnAddOrder(orderBook *matching.OrderBook, order *matching.Order) {
	atomic.AddUint64(&h.orderUpdates, 1)
	h.log.Debug("order resting",
		zap.Uint64("order_id", order.ID()),
		zap.String("side", order.Side().String()),
		zap.String("price", order.Price().ToFloatString()),
		zap.String("rest_quantity", order.RestQuantity().ToFloatString()),
	)
}

func (h *venueHandler) OnDeleteOrder(orderBook *matching.OrderBook, order *matching.Order) {
	atomic.AddUint64(&h.orderUpdates, 1)
	h.log.Debug("order removed", zap.Uint64("order_id", order.ID()))
}

func (h *venueHandler) OnRejectOrder(orderBook *matching.OrderBook, order *matching.Order, reason error) {
	atomic.AddUint64(&h.rejections, 1)
	h.log.Debug("order rejected",
		zap.Uint64("order_id", order.ID()),
		zap.Uint64("account_id", order.AccountID()),
		zap.Error(reason),
	)
}

func (h *venueHandler) OnExecuteOrder(orderBook *matching.OrderBook, order *matching.Order, price matching.Uint, quantity matching.Uint) {
}

func (h *venueHandler) OnExecuteTrade(orderBook *matching.OrderBook, trade matching.ExecutionEvent) {
	atomic.AddUint64(&h.executedTrades, 1)

	h.risk.Apply(trade)
	if h.server != nil {
		h.server.PublishTrade(trade)
	}
	if h.publisher != nil {
		h.publisher.Publish(trade)
	}

	h.log.Info("trade executed",
		zap.String("trade_id", trade.ID.String()),
		zap.String("symbol", trade.Symbol),
		zap.String("price", trade.Price.ToFloatString()),
		zap.String("quantity", trade.Quantity.ToFloatString()),
		zap.String("taker_side", trade.TakerSide.String()),
	)
}

func (h *venueHandler) OnError(orderBook *matching.OrderBook, err error) {
	atomic.AddUint64(&h.errors, 1)
	h.log.Error("order book halted",
		zap.String("symbol", orderBook.Symbol().Name()),
		zap.Error(err),
	)
}
