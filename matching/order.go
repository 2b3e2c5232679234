package matching

import (
	"github.com/venuelabs/matching-venue/types/avl"
	"github.com/venuelabs/matching-venue/types/list"
)

// Order contains information about a single order.
// An order is an instruction to buy or sell a given quantity of the
// instrument, either at a fixed limit price or at the best available
// market price. Identity fields are immutable after submission; only
// the remaining/executed quantities are mutated, and only by the
// matching engine while it owns the order book.
type Order struct {
	id        uint64
	accountID uint64
	symbolID  uint32
	orderType OrderType
	side      OrderSide

	price    Uint
	quantity Uint

	// Sequence number assigned by the engine at submission.
	// Used for time-priority tie-breaks among equal prices.
	seq uint64

	restQuantity     Uint
	executedQuantity Uint

	// Pointer to the price level where the order is placed.
	priceLevel *avl.Node[Uint, *PriceLevel]

	// Pointer to the order queue element where the order is placed.
	orderQueued *list.Element[*Order]
}

////////////////////////////////////////////////////////////////

// ID returns the order ID.
func (o *Order) ID() uint64 {
	return o.id
}

// AccountID returns the account the order trades for.
func (o *Order) AccountID() uint64 {
	return o.accountID
}

// SymbolID returns the symbol ID of the order.
func (o *Order) SymbolID() uint32 {
	return o.symbolID
}

// Seq returns the submission sequence number of the order.
func (o *Order) Seq() uint64 {
	return o.seq
}

////////////////////////////////////////////////////////////////

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// IsLimit returns true if limit order.
func (o *Order) IsLimit() bool {
	return o.orderType == OrderTypeLimit
}

// IsMarket returns true if market order.
func (o *Order) IsMarket() bool {
	return o.orderType == OrderTypeMarket
}

////////////////////////////////////////////////////////////////

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

////////////////////////////////////////////////////////////////

// Price returns the order limit price. Zero for market orders.
func (o *Order) Price() Uint {
	return o.price
}

// Quantity returns the original order quantity.
func (o *Order) Quantity() Uint {
	return o.quantity
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() Uint {
	return o.restQuantity
}

// ExecutedQuantity returns order executed quantity.
func (o *Order) ExecutedQuantity() Uint {
	return o.executedQuantity
}

// IsExecuted returns true if the order is completely executed.
func (o *Order) IsExecuted() bool {
	return o.restQuantity.IsZero()
}

////////////////////////////////////////////////////////////////

// Validate returns an error if the order fields are malformed so that the
// order can be rejected before it touches any order book state.
func (o *Order) Validate() error {
	if o.id == 0 {
		return ErrInvalidOrderID
	}
	if o.side != OrderSideBuy && o.side != OrderSideSell {
		return ErrInvalidOrderSide
	}
	if o.quantity.IsZero() {
		return ErrInvalidOrderQuantity
	}
	switch o.orderType {
	case OrderTypeLimit:
		if o.price.IsZero() {
			return ErrInvalidOrderPrice
		}
	case OrderTypeMarket:
		if !o.price.IsZero() {
			return ErrInvalidOrderPrice
		}
	default:
		return ErrInvalidOrderType
	}
	return nil
}

// fill reduces the remaining quantity of the order by the given trade
// quantity. The caller guarantees quantity <= restQuantity.
func (o *Order) fill(quantity Uint) {
	o.restQuantity = o.restQuantity.Sub(quantity)
	o.executedQuantity = o.executedQuantity.Add(quantity)
}
