package risk

import "github.com/venuelabs/matching-venue/matching"

// Position tracks one account's exposure in one instrument using
// average-cost accounting. Quantity is positive for a long position and
// negative for a short one. The average entry price is maintained over
// increases and reset on reversals; realized P&L accumulates every time
// part of the position is closed.
type Position struct {
	quantity matching.Uint // magnitude of the position
	short    bool          // direction of the position
	avgPrice matching.Uint
	realized Signed
}

// Quantity returns the signed position quantity.
func (p *Position) Quantity() Signed {
	return NewSigned(p.quantity, p.short)
}

// AvgEntryPrice returns the average entry price of the open position.
// Zero when the position is flat.
func (p *Position) AvgEntryPrice() matching.Uint {
	return p.avgPrice
}

// RealizedPnL returns the accumulated realized profit and loss.
func (p *Position) RealizedPnL() Signed {
	return p.realized
}

// IsFlat returns true when no position is open.
func (p *Position) IsFlat() bool {
	return p.quantity.IsZero()
}

// UnrealizedPnL values the open position against the given mark price.
func (p *Position) UnrealizedPnL(markPrice matching.Uint) Signed {
	if p.quantity.IsZero() || markPrice.IsZero() {
		return SignedZero()
	}
	pnl := signedDiff(markPrice, p.avgPrice).Mul(p.quantity)
	if p.short {
		pnl = pnl.Neg()
	}
	return pnl
}

// applyFill folds a single fill into the position.
// A fill in the direction of the position increases it at a weighted
// average entry price. A fill against the position closes (part of) it,
// realizing (price - avg) per closed unit for longs and the opposite for
// shorts. A fill bigger than the open position reverses it: the remainder
// opens a fresh position at the fill price.
func (p *Position) applyFill(side matching.OrderSide, quantity, price matching.Uint) {
	sellFill := side == matching.OrderSideSell

	switch {
	case p.quantity.IsZero():
		// Opening fill
		p.quantity = quantity
		p.short = sellFill
		p.avgPrice = price

	case p.short == sellFill:
		// Increasing fill: weighted average entry price
		newQuantity := p.quantity.Add(quantity)
		weighted := p.avgPrice.Mul(p.quantity).Add(price.Mul(quantity))
		p.avgPrice = weighted.Div(newQuantity)
		p.quantity = newQuantity

	default:
		// Closing fill
		closed := matching.Min(p.quantity, quantity)
		pnl := signedDiff(price, p.avgPrice).Mul(closed)
		if p.short {
			pnl = pnl.Neg()
		}
		p.realized = p.realized.Add(pnl)

		switch {
		case quantity.LessThan(p.quantity):
			// Partial close keeps the entry price
			p.quantity = p.quantity.Sub(quantity)

		case quantity.Equals(p.quantity):
			// Exact close goes flat
			p.quantity = matching.NewZeroUint()
			p.short = false
			p.avgPrice = matching.NewZeroUint()

		default:
			// Reversal opens the remainder at the fill price
			p.quantity = quantity.Sub(p.quantity)
			p.short = sellFill
			p.avgPrice = price
		}
	}
}
