package matching

import "errors"

// Engine manages the market with orders, price levels and order books.
// Every submission is matched immediately on arrival and acknowledged
// synchronously to the caller.
// NOTE: The matching engine is thread safe only when created with multithread flag.
type Engine struct {
	handler Handler
	risk    RiskChecker
	seq     Sequence

	// Allocator shared by all order books
	allocator *Allocator

	// Order books
	orderBooks      []*OrderBook
	orderBooksCount int

	// Engine-wide counters
	metrics *Metrics

	// Multi-thread mode
	multithread bool
}

// NewEngine creates and returns new Engine instance.
// A nil risk checker disables admission checks, a nil sequence generator is
// replaced with the default atomic one.
func NewEngine(handler Handler, risk RiskChecker, seq Sequence, multithread bool) *Engine {
	if seq == nil {
		seq = NewSequence()
	}
	return &Engine{
		handler:     handler,
		risk:        risk,
		seq:         seq,
		allocator:   NewAllocator(),
		orderBooks:  make([]*OrderBook, defaultReservedOrderBookSlots),
		metrics:     new(Metrics),
		multithread: multithread,
	}
}

// Start starts the matching engine.
func (e *Engine) Start() {}

// Stop stops the matching engine.
// It releases all internally used order books and cleans whole order book state.
func (e *Engine) Stop(forced bool) {

	// Close all order book tasks channels
	for i, c := 0, len(e.orderBooks); i < c; i++ {
		if e.orderBooks[i] != nil {
			close(e.orderBooks[i].chanTasks)
			if forced {
				close(e.orderBooks[i].chanForcedStop)
			}
		}
	}

	// Wait until everything is done
	for i, c := 0, len(e.orderBooks); i < c; i++ {
		if e.orderBooks[i] != nil {
			e.orderBooks[i].wg.Wait()
		}
	}

	// Clean all existing order books
	for i, c := 0, len(e.orderBooks); i < c; i++ {
		if e.orderBooks[i] != nil {
			e.orderBooks[i].Clean()
			e.orderBooks[i] = nil
		}
	}
	e.orderBooksCount = 0
}

////////////////////////////////////////////////////////////////
// Engine common
////////////////////////////////////////////////////////////////

// OrderBook returns the order book with given symbol id.
func (e *Engine) OrderBook(id uint32) *OrderBook {
	if int(id) >= len(e.orderBooks) {
		return nil
	}
	return e.orderBooks[id]
}

// OrderBooks returns total amount of currently existing order books.
func (e *Engine) OrderBooks() int {
	return e.orderBooksCount
}

// Orders returns total amount of currently resting orders.
func (e *Engine) Orders() int {
	orders := 0
	for i, c := 0, len(e.orderBooks); i < c; i++ {
		if e.orderBooks[i] != nil {
			orders += e.orderBooks[i].Size()
		}
	}
	return orders
}

// Metrics returns the engine-wide counters.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

////////////////////////////////////////////////////////////////
// Order books management
////////////////////////////////////////////////////////////////

// AddOrderBook creates new order book and adds it to the engine.
func (e *Engine) AddOrderBook(symbol Symbol) (orderBook *OrderBook, err error) {
	if !symbol.Valid() {
		err = ErrInvalidSymbol
		return
	}

	// Ensure order books storage size
	newSize := len(e.orderBooks)
	for newSize <= int(symbol.id) {
		newSize *= 2
	}
	if newSize > len(e.orderBooks) {
		newOrderBooks := make([]*OrderBook, newSize)
		copy(newOrderBooks, e.orderBooks)
		e.orderBooks = newOrderBooks
	}

	// Ensure order book does not exist
	if e.orderBooks[symbol.id] != nil {
		err = ErrOrderBookDuplicate
		return
	}

	// Create order book
	orderBook = NewOrderBook(e.allocator, symbol, defaultOrderBookTaskQueueSize)
	e.orderBooks[symbol.id] = orderBook
	e.orderBooksCount++

	// Call the corresponding handler
	e.handler.OnAddOrderBook(orderBook)

	// Run goroutine unique to the order book to perform order book specific tasks
	if e.multithread {
		go e.loopOrderBook(orderBook)
	}

	return
}

// DeleteOrderBook deletes order book from the engine.
func (e *Engine) DeleteOrderBook(id uint32) (orderBook *OrderBook, err error) {

	// Ensure order book exists
	if int(id) >= len(e.orderBooks) || e.orderBooks[id] == nil {
		err = ErrOrderBookNotFound
		return
	}

	orderBook = e.orderBooks[id]

	// Close order book tasks channel
	close(orderBook.chanTasks)

	// Wait until all order book tasks are performed
	orderBook.wg.Wait()

	// Call the corresponding handler
	e.handler.OnDeleteOrderBook(orderBook)

	// Clean and delete order book
	orderBook.Clean()
	e.orderBooks[id] = nil
	e.orderBooksCount--

	return
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

// SubmitOrder submits a new order for matching and returns the
// acknowledgement once the order has been fully processed: matched,
// rested or rejected. Rejections are reported in Ack.Status/Ack.Reason
// and as the returned error.
func (e *Engine) SubmitOrder(order Order) (Ack, error) {

	// Get the valid order book for the order
	ob := e.OrderBook(order.symbolID)
	if ob == nil {
		return Ack{OrderID: order.id, Status: OrderStatusRejected, Reason: ErrOrderBookNotFound}, ErrOrderBookNotFound
	}

	// Validate order parameters before the book is touched
	if err := order.Validate(); err != nil {
		e.metrics.incOrdersRejected()
		e.handler.OnRejectOrder(ob, &order, err)
		return Ack{
			OrderID:           order.id,
			Status:            OrderStatusRejected,
			RemainingQuantity: order.restQuantity,
			Reason:            err,
		}, err
	}

	var ack Ack
	task := func(ob *OrderBook) error {
		var err error
		ack, err = e.submitOrder(ob, order)
		return err
	}

	if err := e.performOrderBookTask(ob, task); err != nil {
		return ack, err
	}
	return ack, ack.Reason
}

// CancelOrder removes a resting order from its book.
func (e *Engine) CancelOrder(symbolID uint32, orderID uint64) error {

	// Get the valid order book for the order
	ob := e.OrderBook(symbolID)
	if ob == nil {
		return ErrOrderBookNotFound
	}

	task := func(ob *OrderBook) error {
		return e.cancelOrder(ob, orderID)
	}

	return e.performOrderBookTask(ob, task)
}

////////////////////////////////////////////////////////////////
// Loops
////////////////////////////////////////////////////////////////

// loopOrderBook is unique for order book goroutine separately working with given order book and performing enqueued tasks.
func (e *Engine) loopOrderBook(ob *OrderBook) {
	ob.wg.Add(1)
	defer ob.wg.Done()

	// Loop over order book tasks from the queue
	for {
		select {
		case task, ok := <-ob.chanTasks:
			if !ok {
				return
			}
			// Perform task
			e.runOrderBookTask(ob, task)
		case <-ob.chanForcedStop:
			return
		}
	}
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

func (e *Engine) handleUpdatePriceLevel(ob *OrderBook, update PriceLevelUpdate) {
	update.ID = ob.lastUpdateID
	ob.lastUpdateID++ // no need to use atomic.AddUint64()
	ob.updateTopOfBook()
	switch update.Kind {
	case PriceLevelUpdateKindAdd:
		e.handler.OnAddPriceLevel(ob, update)
	case PriceLevelUpdateKindUpdate:
		e.handler.OnUpdatePriceLevel(ob, update)
	case PriceLevelUpdateKindDelete:
		e.handler.OnDeletePriceLevel(ob, update)
	}
	e.handler.OnUpdateOrderBook(ob)
}

// performOrderBookTask runs the task in the goroutine owning the order book
// and blocks until the task is finished, so callers always observe the
// result of their own operation.
func (e *Engine) performOrderBookTask(ob *OrderBook, task func(ob *OrderBook) error) error {
	if !e.multithread {
		return e.runOrderBookTask(ob, task)
	}
	done := make(chan error, 1)
	ob.chanTasks <- func(ob *OrderBook) error {
		err := task(ob)
		done <- err
		return err
	}
	return <-done
}

func (e *Engine) runOrderBookTask(ob *OrderBook, task func(ob *OrderBook) error) error {
	err := task(ob)
	if err != nil && errors.Is(err, ErrInvariantViolation) {
		// The book state can no longer be trusted
		ob.halt()
		e.handler.OnError(ob, err)
	}
	return err
}
