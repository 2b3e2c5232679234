package matching

// Ack is the synchronous acknowledgement returned for every submitted order.
// It carries the terminal disposition of the submission together with all
// trades it produced, in execution order.
type Ack struct {
	OrderID           uint64           `json:"order_id"`
	Seq               uint64           `json:"seq"`
	Status            OrderStatus      `json:"status"`
	ExecutedQuantity  Uint             `json:"executed_quantity"`
	RemainingQuantity Uint             `json:"remaining_quantity"`
	Trades            []ExecutionEvent `json:"trades,omitempty"`

	// Reason is set when Status is OrderStatusRejected.
	Reason error `json:"-"`
}
