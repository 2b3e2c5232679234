package matching

import (
	"sync"

	"github.com/venuelabs/matching-venue/types/avl"
	"github.com/venuelabs/matching-venue/types/list"
)

// Allocator is an object encapsulating all used objects allocation using sync.Pool internally.
type Allocator struct {

	// Price levels
	priceLevels sync.Pool

	// Orders
	orders sync.Pool

	// Pools used by containers
	priceLevelNodes    sync.Pool // used by avl.Tree[Uint, *PriceLevel]
	orderQueueElements sync.Pool // used by list.List
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	// Price levels
	a.priceLevels = sync.Pool{New: func() any {
		return NewPriceLevel(a)
	}}
	// Orders
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	// Pools used by containers
	a.priceLevelNodes = sync.Pool{New: func() any {
		return new(avl.Node[Uint, *PriceLevel])
	}}
	a.orderQueueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	return a
}

////////////////////////////////////////////////////////////////
// Price levels
////////////////////////////////////////////////////////////////

// GetPriceLevel allocates PriceLevel instance.
func (a *Allocator) GetPriceLevel() *PriceLevel {
	// Get from the pool
	return a.priceLevels.Get().(*PriceLevel)
}

// PutPriceLevel releases PriceLevel instance.
func (a *Allocator) PutPriceLevel(priceLevel *PriceLevel) {
	// Clean up the instance before releasing
	priceLevel.Clean()
	// Put back to the pool
	a.priceLevels.Put(priceLevel)
}

////////////////////////////////////////////////////////////////
// Orders
////////////////////////////////////////////////////////////////

// GetOrder allocates Order instance.
func (a *Allocator) GetOrder() *Order {
	// Get from the pool
	return a.orders.Get().(*Order)
}

// PutOrder releases Order instance.
func (a *Allocator) PutOrder(order *Order) {
	// Clean up the instance before releasing
	*order = Order{}
	// Put back to the pool
	a.orders.Put(order)
}
