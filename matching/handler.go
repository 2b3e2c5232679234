package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler,RiskChecker
type Handler interface {

	// Order book handlers
	OnAddOrderBook(orderBook *OrderBook)
	OnUpdateOrderBook(orderBook *OrderBook)
	OnDeleteOrderBook(orderBook *OrderBook)

	// Price level handlers
	OnAddPriceLevel(orderBook *OrderBook, update PriceLevelUpdate)
	OnUpdatePriceLevel(orderBook *OrderBook, update PriceLevelUpdate)
	OnDeletePriceLevel(orderBook *OrderBook, update PriceLevelUpdate)

	// Orders handlers
	OnAddOrder(orderBook *OrderBook, order *Order)
	OnDeleteOrder(orderBook *OrderBook, order *Order)
	OnRejectOrder(orderBook *OrderBook, order *Order, reason error)

	// Matching handlers
	// NOTE: Matching handlers are called BEFORE reducing the orders' rest quantity.
	OnExecuteOrder(orderBook *OrderBook, order *Order, price Uint, quantity Uint)
	OnExecuteTrade(orderBook *OrderBook, trade ExecutionEvent)

	// Errors handler.
	// Called for fatal errors only: the affected order book is already halted.
	OnError(orderBook *OrderBook, err error)
}

// RiskChecker admits or rejects an order before it may touch the order book.
// CheckAdmission must be a pure function of the checker's current state and
// the hypothetical order: it must not mutate anything.
type RiskChecker interface {
	CheckAdmission(accountID uint64, symbol Symbol, side OrderSide, quantity Uint, price Uint) error
}
