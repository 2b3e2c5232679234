package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrOrderBookDuplicate = errors.New("order book is duplicated")
	ErrOrderBookNotFound  = errors.New("order book is not found")
	ErrOrderDuplicate     = errors.New("order is duplicated")
	ErrOrderNotFound      = errors.New("order is not found")

	ErrPriceLevelDuplicate = errors.New("price level is duplicated")
	ErrPriceLevelNotFound  = errors.New("price level is not found")

	ErrInvalidSymbol        = errors.New("invalid symbol")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")

	// ErrInvariantViolation marks corrupted book state (crossed book after a
	// matching pass, zero-quantity resting order, unpriced maker). It is fatal
	// for the affected instrument: the book is halted and requires operator
	// intervention, it is never retried.
	ErrInvariantViolation = errors.New("order book invariant violation")

	// ErrMarketHalted is returned for any submission against a halted book.
	ErrMarketHalted = errors.New("market is halted")
)
