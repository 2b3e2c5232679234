package feed

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
)

func testTrade() matching.ExecutionEvent {
	return matching.ExecutionEvent{
		ID:       uuid.New(),
		SymbolID: 1,
		Symbol:   "AAPL",
	}
}

func TestPublishQueuesWithoutBlocking(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"}, "trades", zap.NewNop())
	defer publisher.Close()

	// Nothing drains the queue, so exactly the buffer capacity fits.
	for i := 0; i < defaultQueueSize; i++ {
		require.True(t, publisher.Publish(testTrade()))
	}
	require.False(t, publisher.Publish(testTrade()))
	require.False(t, publisher.Publish(testTrade()))
	require.Equal(t, uint64(2), publisher.dropped.Load())
	require.Len(t, publisher.queue, defaultQueueSize)
}

func TestPublishConcurrentDropCount(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"}, "trades", zap.NewNop())
	defer publisher.Close()

	// Every order book goroutine publishes into the same queue; the drop
	// counter has to stay exact under contention.
	const (
		workers   = 8
		perWorker = 512
	)
	var (
		wg       sync.WaitGroup
		accepted atomic.Uint64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if publisher.Publish(testTrade()) {
					accepted.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(defaultQueueSize), accepted.Load())
	require.Equal(t, uint64(workers*perWorker-defaultQueueSize), publisher.dropped.Load())
}

func TestPublisherWriterConfig(t *testing.T) {
	publisher := NewPublisher([]string{"kafka-1:9092", "kafka-2:9092"}, "executed-trades", nil)
	defer publisher.Close()

	require.Equal(t, "executed-trades", publisher.writer.Topic)
	require.False(t, publisher.writer.Async)
	require.NotNil(t, publisher.log)
}
