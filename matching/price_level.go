package matching

import (
	"github.com/venuelabs/matching-venue/types/list"
)

// PriceLevel contains a price and the total volume resting at that price,
// and encapsulates the FIFO order queue management. Orders are queued in
// submission sequence order: the front of the queue is always the oldest
// order at the level and therefore the next one to trade.
// NOTE: Not thread-safe.
type PriceLevel struct {
	price  Uint
	volume Uint // total volume of entire order queue
	queue  *list.List[*Order]
}

// NewPriceLevel creates and returns new PriceLevel instance using the given
// allocator pool for the queue elements.
func NewPriceLevel(allocator *Allocator) *PriceLevel {
	return &PriceLevel{
		queue: list.NewListPooled[*Order](&allocator.orderQueueElements),
	}
}

////////////////////////////////////////////////////////////////
// Getters
////////////////////////////////////////////////////////////////

// Price returns price level of the queue.
func (pl *PriceLevel) Price() Uint {
	return pl.price
}

// Volume returns total orders volume.
func (pl *PriceLevel) Volume() Uint {
	return pl.volume
}

// Orders returns amount of orders in the queue.
func (pl *PriceLevel) Orders() int {
	return pl.queue.Len()
}

// Queue returns the order queue.
func (pl *PriceLevel) Queue() *list.List[*Order] {
	return pl.queue
}

// Iterator returns FIFO iterator over the queued orders.
func (pl *PriceLevel) Iterator() list.Iterator[*Order] {
	return list.NewIterator(pl.queue)
}

// Clean cleans the price level by removing all queued orders.
func (pl *PriceLevel) Clean() {
	pl.price = NewZeroUint()
	pl.volume = NewZeroUint()
	pl.queue.Clean()
}
