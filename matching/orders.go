package matching

// NewLimitOrder creates new limit order.
func NewLimitOrder(
	symbolID uint32,
	orderID uint64,
	accountID uint64,
	side OrderSide,
	price Uint,
	quantity Uint,
) Order {
	return Order{
		id:           orderID,
		accountID:    accountID,
		symbolID:     symbolID,
		orderType:    OrderTypeLimit,
		side:         side,
		price:        price,
		quantity:     quantity,
		restQuantity: quantity,
	}
}

// NewMarketOrder creates new market order.
func NewMarketOrder(
	symbolID uint32,
	orderID uint64,
	accountID uint64,
	side OrderSide,
	quantity Uint,
) Order {
	return Order{
		id:           orderID,
		accountID:    accountID,
		symbolID:     symbolID,
		orderType:    OrderTypeMarket,
		side:         side,
		quantity:     quantity,
		restQuantity: quantity,
	}
}
