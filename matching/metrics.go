package matching

import (
	"sync/atomic"
	"time"
)

// Metrics carries engine-wide counters updated on the matching path and read
// by reporting collaborators. All fields are updated atomically so reads
// never block matching.
type Metrics struct {
	ordersProcessed    atomic.Uint64
	ordersRejected     atomic.Uint64
	tradesExecuted     atomic.Uint64
	lastProcessingTime atomic.Int64 // nanoseconds
}

// MetricsSnapshot is a point-in-time copy of the engine counters.
type MetricsSnapshot struct {
	OrdersProcessed    uint64        `json:"orders_processed"`
	OrdersRejected     uint64        `json:"orders_rejected"`
	TradesExecuted     uint64        `json:"trades_executed"`
	LastProcessingTime time.Duration `json:"last_processing_time_ns"`
}

func (m *Metrics) incOrdersProcessed() {
	m.ordersProcessed.Add(1)
}

func (m *Metrics) incOrdersRejected() {
	m.ordersRejected.Add(1)
}

func (m *Metrics) incTradesExecuted(count uint64) {
	m.tradesExecuted.Add(count)
}

func (m *Metrics) setProcessingTime(d time.Duration) {
	m.lastProcessingTime.Store(int64(d))
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		OrdersProcessed:    m.ordersProcessed.Load(),
		OrdersRejected:     m.ordersRejected.Load(),
		TradesExecuted:     m.tradesExecuted.Load(),
		LastProcessingTime: time.Duration(m.lastProcessingTime.Load()),
	}
}
