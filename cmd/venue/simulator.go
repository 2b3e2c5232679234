package main

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
)

// simulator submits random limit orders to keep the book busy.
// Prices are drawn from [100, 200), quantities from [10, 1000), and a
// quarter of the resting orders are cancelled a second later.
type simulator struct {
	engine   *matching.Engine
	log      *zap.Logger
	symbolID uint32
	ids      matching.Sequence
	accounts int
	interval time.Duration
	rng      *rand.Rand
	cancels  sync.WaitGroup
}

func newSimulator(engine *matching.Engine, symbolID uint32, ids matching.Sequence, accounts int, interval time.Duration, log *zap.Logger) *simulator {
	if accounts < 1 {
		accounts = 1
	}
	return &simulator{
		engine:   engine,
		log:      log,
		symbolID: symbolID,
		ids:      ids,
		accounts: accounts,
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *simulator) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Delayed cancels must not outlive run: the engine stops right after
	// the worker group drains.
	defer s.cancels.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.submitRandomOrder(ctx)
		}
	}
}

func (s *simulator) submitRandomOrder(ctx context.Context) {
	side := matching.OrderSideBuy
	if s.rng.Intn(2) == 1 {
		side = matching.OrderSideSell
	}

	price := matching.NewUint(uint64(100 + s.rng.Intn(100))).Mul64(matching.UintPrecision)
	quantity := matching.NewUint(uint64(10 + s.rng.Intn(990))).Mul64(matching.UintPrecision)
	accountID := uint64(1 + s.rng.Intn(s.accounts))
	orderID := s.ids.Next()

	order := matching.NewLimitOrder(s.symbolID, orderID, accountID, side, price, quantity)
	ack, err := s.engine.SubmitOrder(order)
	if err != nil {
		s.log.Debug("simulated order rejected", zap.Uint64("order_id", orderID), zap.Error(err))
		return
	}

	resting := ack.Status == matching.OrderStatusResting ||
		ack.Status == matching.OrderStatusPartiallyFilledResting
	if resting && s.rng.Intn(4) == 0 {
		s.cancels.Add(1)
		go func() {
			defer s.cancels.Done()
			s.cancelLater(ctx, orderID)
		}()
	}
}

func (s *simulator) cancelLater(ctx context.Context, orderID uint64) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(time.Second):
	}
	if err := s.engine.CancelOrder(s.symbolID, orderID); err != nil {
		// Usually already filled in the meantime.
		s.log.Debug("simulated cancel skipped", zap.Uint64("order_id", orderID), zap.Error(err))
	}
}
