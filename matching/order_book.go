package matching

import (
	"sync"
	"sync/atomic"

	"github.com/tidwall/hashmap"

	"github.com/venuelabs/matching-venue/types/avl"
	"github.com/venuelabs/matching-venue/types/list"
)

// OrderBook stores resting buy and sell orders of a single instrument in
// price level order. Bids are ordered highest price first, asks lowest price
// first, and each price level queues its orders in FIFO submission order.
// NOTE: Not thread-safe. All mutation goes through the per-book task
// goroutine owned by the engine; there is no mutation path around it.
type OrderBook struct {
	// Allocator used by the order book
	allocator *Allocator

	// Order book symbol
	symbol Symbol

	// Bid/Ask price levels
	bids avl.Tree[Uint, *PriceLevel]
	asks avl.Tree[Uint, *PriceLevel]

	// Price of the last trade executed in this book
	lastTradePrice Uint

	// Last used price level update ID
	lastUpdateID uint64

	// Halted is set when a book invariant violation is detected. A halted
	// book rejects every further submission until operator intervention.
	halted atomic.Bool

	// Orders storage is internal for each order book
	orders *hashmap.Map[uint64, *Order]

	// Top of book snapshot kept up to date after every mutation so spread
	// queries never wait for matching.
	top      TopOfBook
	topMutex sync.RWMutex

	// Tasks to run in the single goroutine owning the order book
	chanTasks chan func(*OrderBook) error

	// Synchronization stuff
	chanForcedStop chan struct{} // for forced stop
	wg             sync.WaitGroup
}

// TopOfBook is a read-only snapshot of the best bid/ask of a book.
// Zero-volume sides are marked with HasBid/HasAsk set to false.
type TopOfBook struct {
	Symbol         string `json:"symbol"`
	HasBid         bool   `json:"has_bid"`
	BidPrice       Uint   `json:"bid_price"`
	BidVolume      Uint   `json:"bid_volume"`
	HasAsk         bool   `json:"has_ask"`
	AskPrice       Uint   `json:"ask_price"`
	AskVolume      Uint   `json:"ask_volume"`
	LastTradePrice Uint   `json:"last_trade_price"`
}

// Spread returns ask-bid and true when both sides are present.
func (t TopOfBook) Spread() (Uint, bool) {
	if !t.HasBid || !t.HasAsk {
		return NewZeroUint(), false
	}
	return t.AskPrice.Sub(t.BidPrice), true
}

// Mid returns the mid price and true when both sides are present.
func (t TopOfBook) Mid() (Uint, bool) {
	if !t.HasBid || !t.HasAsk {
		return NewZeroUint(), false
	}
	return t.BidPrice.Add(t.AskPrice).Div64(2), true
}

// NewOrderBook creates and returns new OrderBook instance.
func NewOrderBook(allocator *Allocator, symbol Symbol, taskQueueSize int) *OrderBook {
	newPriceLevelTree := func() avl.Tree[Uint, *PriceLevel] {
		return avl.NewTreePooled[Uint, *PriceLevel](
			func(a, b Uint) int { return a.Cmp(b) },
			&allocator.priceLevelNodes,
		)
	}
	newPriceLevelReversedTree := func() avl.Tree[Uint, *PriceLevel] {
		return avl.NewTreePooled[Uint, *PriceLevel](
			func(a, b Uint) int { return -a.Cmp(b) },
			&allocator.priceLevelNodes,
		)
	}

	return &OrderBook{
		allocator:      allocator,
		symbol:         symbol,
		bids:           newPriceLevelReversedTree(),
		asks:           newPriceLevelTree(),
		lastTradePrice: NewZeroUint(),
		orders:         hashmap.New[uint64, *Order](defaultReservedOrderSlots),
		top:            TopOfBook{Symbol: symbol.Name()},
		chanTasks:      make(chan func(*OrderBook) error, taskQueueSize),
		chanForcedStop: make(chan struct{}),
	}
}

// Clean releases all internally used tree nodes and cleans whole order book state.
func (ob *OrderBook) Clean() {
	clean := func(v *PriceLevel) bool {
		// Release queued orders before the level itself
		it := v.Iterator()
		for it.Next() {
			ob.allocator.PutOrder(it.Current().Value)
		}
		ob.allocator.PutPriceLevel(v)
		return false
	}
	// Clean all price levels
	ob.bids.IteratePostOrder(clean)
	ob.asks.IteratePostOrder(clean)
	ob.bids.Clear()
	ob.asks.Clear()
	ob.orders = hashmap.New[uint64, *Order](defaultReservedOrderSlots)
}

////////////////////////////////////////////////////////////////
// Order book getters
////////////////////////////////////////////////////////////////

// Symbol returns order book symbol.
func (ob *OrderBook) Symbol() Symbol {
	return ob.symbol
}

// IsEmpty returns true if the order book has no orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.Size() == 0
}

// Size returns total amount of resting orders in the order book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// Order returns resting order with given id, or nil.
func (ob *OrderBook) Order(id uint64) *Order {
	if order, ok := ob.orders.Get(id); ok {
		return order
	}
	return nil
}

// IsHalted returns true if the book stopped accepting orders after an
// invariant violation.
func (ob *OrderBook) IsHalted() bool {
	return ob.halted.Load()
}

// halt permanently stops the book.
func (ob *OrderBook) halt() {
	ob.halted.Store(true)
}

// LastTradePrice returns the price of the last trade in this book.
func (ob *OrderBook) LastTradePrice() Uint {
	return ob.lastTradePrice
}

////////////////////////////////////////////////////////////////
// Top price levels getters
////////////////////////////////////////////////////////////////

// TopBid returns best buy order price level.
func (ob *OrderBook) TopBid() *avl.Node[Uint, *PriceLevel] {
	return ob.bids.MostLeft()
}

// TopAsk returns best sell order price level.
func (ob *OrderBook) TopAsk() *avl.Node[Uint, *PriceLevel] {
	return ob.asks.MostLeft()
}

// GetBid returns buy order price level with given price.
func (ob *OrderBook) GetBid(price Uint) *avl.Node[Uint, *PriceLevel] {
	return ob.bids.Find(price)
}

// GetAsk returns sell order price level with given price.
func (ob *OrderBook) GetAsk(price Uint) *avl.Node[Uint, *PriceLevel] {
	return ob.asks.Find(price)
}

// TopOfBook returns the current best bid/ask snapshot. Safe to call from any
// goroutine, never blocks on matching.
func (ob *OrderBook) TopOfBook() TopOfBook {
	ob.topMutex.RLock()
	defer ob.topMutex.RUnlock()

	return ob.top
}

// updateTopOfBook refreshes the snapshot from the price level trees.
// Called by the owning goroutine after each completed book operation.
func (ob *OrderBook) updateTopOfBook() {
	top := TopOfBook{Symbol: ob.symbol.Name(), LastTradePrice: ob.lastTradePrice}
	if bid := ob.TopBid(); bid != nil {
		top.HasBid = true
		top.BidPrice = bid.Value().Price()
		top.BidVolume = bid.Value().Volume()
	}
	if ask := ob.TopAsk(); ask != nil {
		top.HasAsk = true
		top.AskPrice = ask.Value().Price()
		top.AskVolume = ask.Value().Volume()
	}

	ob.topMutex.Lock()
	ob.top = top
	ob.topMutex.Unlock()
}

////////////////////////////////////////////////////////////////
// Maker lookup
////////////////////////////////////////////////////////////////

// MakerIterator walks resting orders on one side of the book eligible to
// trade against the given taker side and limit price, in (price priority,
// then time priority) order. The book must not be mutated while iterating.
type MakerIterator struct {
	takerSide  OrderSide
	limitPrice Uint
	market     bool
	node       *avl.Node[Uint, *PriceLevel]
	elem       *list.Element[*Order]
}

// EligibleMakers returns an iterator over the resting orders on the side
// opposite to takerSide which are eligible to trade at the given limit
// price: for a buy taker all asks priced <= limit, for a sell taker all bids
// priced >= limit, any price when market is true.
func (ob *OrderBook) EligibleMakers(takerSide OrderSide, limitPrice Uint, market bool) MakerIterator {
	it := MakerIterator{
		takerSide:  takerSide,
		limitPrice: limitPrice,
		market:     market,
	}
	if takerSide == OrderSideBuy {
		it.node = ob.TopAsk()
	} else {
		it.node = ob.TopBid()
	}
	if it.node != nil {
		it.elem = it.node.Value().Queue().Front()
	}
	return it
}

// Next returns the next eligible maker order or nil when no more orders are
// eligible. Both trees are price ordered best-first, so the walk stops at the
// first level that fails the price condition.
func (it *MakerIterator) Next() *Order {
	for it.node != nil {
		if !it.market && !it.eligible(it.node.Value().Price()) {
			return nil
		}
		if it.elem != nil {
			order := it.elem.Value
			it.elem = it.elem.Next()
			return order
		}
		it.node = it.node.NextRight()
		if it.node != nil {
			it.elem = it.node.Value().Queue().Front()
		}
	}
	return nil
}

func (it *MakerIterator) eligible(makerPrice Uint) bool {
	if it.takerSide == OrderSideBuy {
		return makerPrice.LessThanOrEqualTo(it.limitPrice)
	}
	return makerPrice.GreaterThanOrEqualTo(it.limitPrice)
}

// bestEligibleMaker returns the single best-priority maker for the taker, or
// nil when the opposite side has no eligible liquidity.
func (ob *OrderBook) bestEligibleMaker(takerSide OrderSide, limitPrice Uint, market bool) *Order {
	it := ob.EligibleMakers(takerSide, limitPrice, market)
	return it.Next()
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

func (ob *OrderBook) addOrder(order *Order) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate

	tree := ob.treeForOrder(order)
	if tree == nil {
		err = ErrInvalidOrderType
		return
	}

	// Find the price level for the order
	node := tree.Find(order.price)

	// Create a new price level if no one found
	if node == nil {
		node, err = ob.addPriceLevel(tree, order.price)
		if err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindAdd
	}

	// Update the price level volume
	priceLevel := node.Value()
	priceLevel.volume = priceLevel.volume.Add(order.restQuantity)

	// Enqueue the new order to the order queue of the price level
	order.orderQueued = priceLevel.queue.PushBack(order)

	// Cache the price level in the given order
	order.priceLevel = node

	// Price level was changed so prepare update object
	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() != nil && node.Key().Equals(tree.MostLeft().Key()),
	}

	return
}

func (ob *OrderBook) reduceOrder(order *Order, quantity Uint) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate

	tree := ob.treeForOrder(order)
	if tree == nil {
		err = ErrInvalidOrderType
		return
	}

	// Find the price level for the order
	node := order.priceLevel
	if node == nil {
		err = ErrPriceLevelNotFound
		return
	}

	// Update the price level volume
	priceLevel := node.Value()
	priceLevel.volume = priceLevel.volume.Sub(quantity)

	if order.IsExecuted() {
		// Dequeue the empty order from the order queue of the price level
		if _, err = priceLevel.queue.Remove(order.orderQueued); err != nil {
			return
		}
		order.orderQueued = nil

		// Clear the price level cache in the given order
		order.priceLevel = nil
	}

	// Price level was changed so prepare update object
	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() != nil && node.Key().Equals(tree.MostLeft().Key()),
	}

	// Delete the empty price level
	if priceLevel.volume.IsZero() {
		err = ob.deletePriceLevel(tree, priceLevel.price)
		if err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindDelete
	}

	return
}

func (ob *OrderBook) deleteOrder(order *Order) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate

	tree := ob.treeForOrder(order)
	if tree == nil {
		err = ErrInvalidOrderType
		return
	}

	// Find the price level for the order
	node := order.priceLevel
	if node == nil {
		err = ErrPriceLevelNotFound
		return
	}

	// Update the price level volume
	priceLevel := node.Value()
	priceLevel.volume = priceLevel.volume.Sub(order.restQuantity)

	// Dequeue the deleted order from the order queue of the price level
	if _, err = priceLevel.queue.Remove(order.orderQueued); err != nil {
		return
	}
	order.orderQueued = nil

	// Clear the price level cache in the given order
	order.priceLevel = nil

	// Price level was changed so prepare update object
	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() != nil && node.Key().Equals(tree.MostLeft().Key()),
	}

	// Delete the empty price level
	if priceLevel.volume.IsZero() {
		err = ob.deletePriceLevel(tree, priceLevel.price)
		if err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindDelete
	}

	return
}

////////////////////////////////////////////////////////////////
// Price levels management
////////////////////////////////////////////////////////////////

func (ob *OrderBook) addPriceLevel(tree *avl.Tree[Uint, *PriceLevel], price Uint) (*avl.Node[Uint, *PriceLevel], error) {
	priceLevel := ob.allocator.GetPriceLevel()
	priceLevel.price = price
	node, err := tree.Add(price, priceLevel)
	if err != nil {
		return nil, ErrPriceLevelDuplicate
	}
	return node, nil
}

func (ob *OrderBook) deletePriceLevel(tree *avl.Tree[Uint, *PriceLevel], price Uint) error {
	priceLevel, err := tree.Remove(price)
	if err != nil {
		return ErrPriceLevelNotFound
	}
	ob.allocator.PutPriceLevel(priceLevel)
	return nil
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

func (ob *OrderBook) updateLastTradePrice(price Uint) {
	ob.lastTradePrice = price
}

// verifyUncrossed checks the resting book invariant: the best bid must be
// strictly below the best ask whenever both sides are non-empty. A crossed
// state may exist only transiently inside a single matching pass.
func (ob *OrderBook) verifyUncrossed() error {
	topBid, topAsk := ob.TopBid(), ob.TopAsk()
	if topBid == nil || topAsk == nil {
		return nil
	}
	if topBid.Value().Price().GreaterThanOrEqualTo(topAsk.Value().Price()) {
		return ErrInvariantViolation
	}
	return nil
}

func (ob *OrderBook) treeForOrder(order *Order) *avl.Tree[Uint, *PriceLevel] {
	if order.orderType != OrderTypeLimit {
		// Only limit orders rest in the book
		return nil
	}
	if order.IsBuy() {
		return &ob.bids
	}
	return &ob.asks
}
