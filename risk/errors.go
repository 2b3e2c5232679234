package risk

import "errors"

var (
	ErrOrderTooLarge         = errors.New("order quantity exceeds the per-order limit")
	ErrPositionLimitExceeded = errors.New("projected position exceeds the position limit")
	ErrNotionalLimitExceeded = errors.New("projected notional exceeds the notional limit")
)
