package matching

// OrderStatus is the terminal (or resting) state of a submitted order as
// reported back to the submitter.
type OrderStatus uint8

const (
	// OrderStatusRejected means the order failed validation or the risk
	// admission check. The order book is left untouched.
	OrderStatusRejected OrderStatus = iota + 1
	// OrderStatusResting means a limit order matched nothing and now rests
	// in the order book with its full quantity.
	OrderStatusResting
	// OrderStatusPartiallyFilledResting means a limit order matched partially
	// and its remaining quantity rests in the order book.
	OrderStatusPartiallyFilledResting
	// OrderStatusPartiallyFilledUnfilled means a market order could not be
	// fully matched and its remaining quantity was discarded.
	OrderStatusPartiallyFilledUnfilled
	// OrderStatusFilled means the order was fully executed.
	OrderStatusFilled
	// OrderStatusCancelled means a resting order was removed on request.
	OrderStatusCancelled
)

func (os OrderStatus) String() string {
	switch os {
	case OrderStatusRejected:
		return "rejected"
	case OrderStatusResting:
		return "resting"
	case OrderStatusPartiallyFilledResting:
		return "partially-filled-resting"
	case OrderStatusPartiallyFilledUnfilled:
		return "partially-filled-unfilled"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
