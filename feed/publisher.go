package feed

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
)

const defaultQueueSize = 1024

// Publisher streams execution events to a Kafka topic. Publishing never
// blocks the matching path: events are queued on a buffered channel and
// written by the Run loop; when the queue is full the event is dropped
// and counted.
type Publisher struct {
	writer *kafka.Writer
	log    *zap.Logger

	queue   chan matching.ExecutionEvent
	dropped atomic.Uint64 // Publish runs on every order book goroutine
}

// NewPublisher creates a trade feed publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
		log:   log,
		queue: make(chan matching.ExecutionEvent, defaultQueueSize),
	}
}

// Publish enqueues a trade for delivery. Returns false when the queue is
// full and the event was dropped.
func (p *Publisher) Publish(trade matching.ExecutionEvent) bool {
	select {
	case p.queue <- trade:
		return true
	default:
		p.log.Warn("trade feed queue full, event dropped",
			zap.String("trade_id", trade.ID.String()),
			zap.Uint64("dropped_total", p.dropped.Add(1)),
		)
		return false
	}
}

// Run delivers queued trades until the context is cancelled. Remaining
// queued events are flushed before returning.
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.flush()
			return
		case trade := <-p.queue:
			p.send(ctx, trade)
		}
	}
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) flush() {
	for {
		select {
		case trade := <-p.queue:
			p.send(context.Background(), trade)
		default:
			return
		}
	}
}

func (p *Publisher) send(ctx context.Context, trade matching.ExecutionEvent) {
	value, err := json.Marshal(trade)
	if err != nil {
		p.log.Error("trade feed marshal failed",
			zap.String("trade_id", trade.ID.String()),
			zap.Error(err),
		)
		return
	}

	// Key by symbol id so one instrument stays on one partition
	message := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(trade.SymbolID), 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.log.Error("trade feed write failed",
			zap.String("trade_id", trade.ID.String()),
			zap.Error(err),
		)
	}
}
