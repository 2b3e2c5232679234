package matching

// matchOrder matches the taker order against resting liquidity until the
// taker is fully executed or no eligible maker remains. Trades always
// execute at the maker's price. Orders within a price level are consumed
// in FIFO submission order, levels in price priority order.
func (e *Engine) matchOrder(ob *OrderBook, taker *Order) ([]ExecutionEvent, error) {
	var trades []ExecutionEvent

	for !taker.IsExecuted() {

		// Find the best priced maker eligible to trade with the taker
		maker := ob.bestEligibleMaker(taker.side, taker.price, taker.IsMarket())
		if maker == nil {
			break
		}

		// Market orders never rest, so a resting maker always carries a price
		if maker.IsMarket() {
			return trades, ErrInvariantViolation
		}

		price := maker.price
		quantity := Min(taker.restQuantity, maker.restQuantity)

		// Every trade must move quantity, otherwise matching cannot progress
		if quantity.IsZero() {
			return trades, ErrInvariantViolation
		}

		// Call the corresponding handlers
		e.handler.OnExecuteOrder(ob, maker, price, quantity)
		e.handler.OnExecuteOrder(ob, taker, price, quantity)

		trade := newExecutionEvent(ob.symbol, maker, taker, price, quantity)

		// Fill both counterparties with the same quantity
		maker.fill(quantity)
		taker.fill(quantity)

		// Update the last trade price of the book
		ob.updateLastTradePrice(price)

		// Call the corresponding handler
		e.handler.OnExecuteTrade(ob, trade)

		trades = append(trades, trade)

		// Reduce the maker in the order book
		update, err := ob.reduceOrder(maker, quantity)
		if err != nil {
			return trades, ErrInvariantViolation
		}
		e.handleUpdatePriceLevel(ob, update)

		// Delete the fully executed maker
		if maker.IsExecuted() {

			// Erase the order
			ob.orders.Delete(maker.id)

			// Call the corresponding handler
			e.handler.OnDeleteOrder(ob, maker)

			// Release the order
			e.allocator.PutOrder(maker)
		}
	}

	return trades, nil
}
