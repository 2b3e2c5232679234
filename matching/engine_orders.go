package matching

import (
	"time"

	"github.com/venuelabs/matching-venue/types/avl"
)

// submitOrder performs the whole lifecycle of a single submission inside the
// goroutine owning the order book: admission, matching and resting of the
// residual. A rejection is not an engine error: it is reported through the
// handler and the returned Ack, and the task itself succeeds.
func (e *Engine) submitOrder(ob *OrderBook, order Order) (Ack, error) {
	start := time.Now()

	reject := func(reason error) (Ack, error) {
		e.metrics.incOrdersRejected()
		e.handler.OnRejectOrder(ob, &order, reason)
		return Ack{
			OrderID:           order.id,
			Status:            OrderStatusRejected,
			RemainingQuantity: order.restQuantity,
			Reason:            reason,
		}, nil
	}

	if ob.IsHalted() {
		return reject(ErrMarketHalted)
	}

	// Ensure the order id is unique among resting orders
	if ob.Order(order.id) != nil {
		return reject(ErrOrderDuplicate)
	}

	// The sequence number fixes the time priority of the order
	order.seq = e.seq.Next()

	// Risk admission happens before the book is touched, so a rejected
	// order leaves no trace in the book
	if e.risk != nil {
		refPrice := e.admissionPrice(ob, &order)
		if err := e.risk.CheckAdmission(order.accountID, ob.symbol, order.side, order.quantity, refPrice); err != nil {
			return reject(err)
		}
	}

	// Match against resting liquidity
	trades, err := e.matchOrder(ob, &order)

	ack := Ack{
		OrderID:           order.id,
		Seq:               order.seq,
		ExecutedQuantity:  order.executedQuantity,
		RemainingQuantity: order.restQuantity,
		Trades:            trades,
	}

	if err != nil {
		return ack, err
	}

	switch {
	case order.IsExecuted():
		ack.Status = OrderStatusFilled

	case order.IsMarket():
		// The unfilled market remainder is discarded, never rested
		ack.Status = OrderStatusPartiallyFilledUnfilled

	default:
		// Rest the limit residual in the book
		resting := e.allocator.GetOrder()
		*resting = order
		update, err := ob.addOrder(resting)
		if err != nil {
			return ack, ErrInvariantViolation
		}
		ob.orders.Set(resting.id, resting)
		e.handler.OnAddOrder(ob, resting)
		e.handleUpdatePriceLevel(ob, update)

		if order.executedQuantity.IsZero() {
			ack.Status = OrderStatusResting
		} else {
			ack.Status = OrderStatusPartiallyFilledResting
		}
	}

	// The best bid must stay strictly below the best ask once the
	// submission is fully processed
	if err := ob.verifyUncrossed(); err != nil {
		return ack, err
	}

	e.metrics.incOrdersProcessed()
	e.metrics.incTradesExecuted(uint64(len(trades)))
	e.metrics.setProcessingTime(time.Since(start))

	return ack, nil
}

// cancelOrder removes a resting order and releases it back to the pool.
func (e *Engine) cancelOrder(ob *OrderBook, orderID uint64) error {

	// Get the order by given id
	order := ob.Order(orderID)
	if order == nil {
		return ErrOrderNotFound
	}

	update, err := ob.deleteOrder(order)
	if err != nil {
		return ErrInvariantViolation
	}

	// Erase the order
	ob.orders.Delete(order.id)

	// Call the corresponding handler
	e.handler.OnDeleteOrder(ob, order)

	e.handleUpdatePriceLevel(ob, update)

	// Release the order
	e.allocator.PutOrder(order)

	return nil
}

// admissionPrice returns the price at which the order is valued for risk
// admission: the limit price for limit orders, the best opposite price for
// market orders with a fallback to the last trade price when the opposite
// side is empty. The final fallback is zero, which still lets the position
// limit be enforced while contributing nothing to notional.
func (e *Engine) admissionPrice(ob *OrderBook, order *Order) Uint {
	if order.IsLimit() {
		return order.price
	}

	var opposite *avl.Node[Uint, *PriceLevel]
	if order.IsBuy() {
		opposite = ob.TopAsk()
	} else {
		opposite = ob.TopBid()
	}
	if opposite != nil {
		return opposite.Value().Price()
	}

	return ob.lastTradePrice
}
