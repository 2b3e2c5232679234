package matching

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionEvent is an immutable record of a single match between a resting
// (maker) order and an incoming (taker) order. It is produced only by the
// matching engine and consumed exactly once by the risk manager plus any
// reporting collaborators.
type ExecutionEvent struct {
	ID             uuid.UUID `json:"id"`
	SymbolID       uint32    `json:"symbol_id"`
	Symbol         string    `json:"symbol"`
	MakerOrderID   uint64    `json:"maker_order_id"`
	TakerOrderID   uint64    `json:"taker_order_id"`
	MakerAccountID uint64    `json:"maker_account_id"`
	TakerAccountID uint64    `json:"taker_account_id"`
	TakerSide      OrderSide `json:"taker_side"`
	Price          Uint      `json:"price"`
	Quantity       Uint      `json:"quantity"`
	Timestamp      time.Time `json:"timestamp"`
}

// BuyerAccountID returns the account that bought in this trade.
func (e ExecutionEvent) BuyerAccountID() uint64 {
	if e.TakerSide == OrderSideBuy {
		return e.TakerAccountID
	}
	return e.MakerAccountID
}

// SellerAccountID returns the account that sold in this trade.
func (e ExecutionEvent) SellerAccountID() uint64 {
	if e.TakerSide == OrderSideBuy {
		return e.MakerAccountID
	}
	return e.TakerAccountID
}

// newExecutionEvent records a trade between maker and taker.
// The trade price is always the maker's quoted price.
func newExecutionEvent(symbol Symbol, maker, taker *Order, price, quantity Uint) ExecutionEvent {
	return ExecutionEvent{
		ID:             uuid.New(),
		SymbolID:       symbol.ID(),
		Symbol:         symbol.Name(),
		MakerOrderID:   maker.id,
		TakerOrderID:   taker.id,
		MakerAccountID: maker.accountID,
		TakerAccountID: taker.accountID,
		TakerSide:      taker.side,
		Price:          price,
		Quantity:       quantity,
		Timestamp:      time.Now().UTC(),
	}
}
