package matching_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	matching "github.com/venuelabs/matching-venue/matching"
	mockmatching "github.com/venuelabs/matching-venue/matching/mocks"
)

func TestLimitOrdersMatching(t *testing.T) {
	const symbolID uint32 = 10

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newEngine := func(t *testing.T) *matching.Engine {
		handler := mockmatching.NewMockHandler(ctrl)
		setupMockHandler(t, handler)
		engine := matching.NewEngine(handler, nil, nil, false)
		_, err := engine.AddOrderBook(matching.NewSymbol(symbolID, "TEST"))
		require.NoError(t, err)
		return engine
	}

	t.Run("aggressive buy against resting sell executes at maker price", func(t *testing.T) {
		engine := newEngine(t)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(50)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusResting, ack.Status)

		ack, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(101), units(30)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusFilled, ack.Status)
		require.Len(t, ack.Trades, 1)

		trade := ack.Trades[0]
		require.True(t, trade.Price.Equals(units(100))) // maker price, not 101
		require.True(t, trade.Quantity.Equals(units(30)))
		require.Equal(t, uint64(1), trade.MakerOrderID)
		require.Equal(t, uint64(2), trade.TakerOrderID)
		require.Equal(t, matching.OrderSideBuy, trade.TakerSide)

		// Maker keeps resting with the remainder.
		ob := engine.OrderBook(symbolID)
		maker := ob.Order(1)
		require.NotNil(t, maker)
		require.True(t, maker.RestQuantity().Equals(units(20)))
		require.Nil(t, ob.Order(2))
	})

	t.Run("passive buy rests without trading", func(t *testing.T) {
		engine := newEngine(t)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusResting, ack.Status)

		ack, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(99), units(10)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusResting, ack.Status)
		require.Empty(t, ack.Trades)

		top := engine.OrderBook(symbolID).TopOfBook()
		require.True(t, top.BidPrice.Equals(units(99)))
		require.True(t, top.AskPrice.Equals(units(100)))
	})

	t.Run("partial fill rests the residual", func(t *testing.T) {
		engine := newEngine(t)

		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(30)))
		require.NoError(t, err)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(100), units(50)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusPartiallyFilledResting, ack.Status)
		require.True(t, ack.ExecutedQuantity.Equals(units(30)))
		require.True(t, ack.RemainingQuantity.Equals(units(20)))

		ob := engine.OrderBook(symbolID)
		require.Nil(t, ob.Order(1))
		taker := ob.Order(2)
		require.NotNil(t, taker)
		require.True(t, taker.RestQuantity().Equals(units(20)))

		top := ob.TopOfBook()
		require.True(t, top.HasBid)
		require.False(t, top.HasAsk)
		require.True(t, top.BidPrice.Equals(units(100)))
	})

	t.Run("time priority within a price level", func(t *testing.T) {
		engine := newEngine(t)

		// Two sells at the same price, then a third at the same price.
		for id := uint64(1); id <= 3; id++ {
			_, err := engine.SubmitOrder(matching.NewLimitOrder(
				symbolID, id, id, matching.OrderSideSell, units(100), units(10)))
			require.NoError(t, err)
		}

		// Taker for 15 consumes all of #1 and half of #2, never touches #3.
		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 10, 9, matching.OrderSideBuy, units(100), units(15)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusFilled, ack.Status)
		require.Len(t, ack.Trades, 2)
		require.Equal(t, uint64(1), ack.Trades[0].MakerOrderID)
		require.Equal(t, uint64(2), ack.Trades[1].MakerOrderID)
		require.True(t, ack.Trades[0].Quantity.Equals(units(10)))
		require.True(t, ack.Trades[1].Quantity.Equals(units(5)))

		ob := engine.OrderBook(symbolID)
		require.Nil(t, ob.Order(1))
		require.True(t, ob.Order(2).RestQuantity().Equals(units(5)))
		require.True(t, ob.Order(3).RestQuantity().Equals(units(10)))
	})

	t.Run("price priority across levels", func(t *testing.T) {
		engine := newEngine(t)

		// Worse priced ask submitted first, better priced ask second.
		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(101), units(10)))
		require.NoError(t, err)
		_, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 10, 9, matching.OrderSideBuy, units(101), units(15)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusFilled, ack.Status)
		require.Len(t, ack.Trades, 2)

		// Better price wins despite arriving later.
		require.Equal(t, uint64(2), ack.Trades[0].MakerOrderID)
		require.True(t, ack.Trades[0].Price.Equals(units(100)))
		require.Equal(t, uint64(1), ack.Trades[1].MakerOrderID)
		require.True(t, ack.Trades[1].Price.Equals(units(101)))
	})

	t.Run("quantity is conserved across fills", func(t *testing.T) {
		engine := newEngine(t)

		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(7)))
		require.NoError(t, err)
		_, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideSell, units(101), units(9)))
		require.NoError(t, err)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 10, 9, matching.OrderSideBuy, units(101), units(20)))
		require.NoError(t, err)

		sum := matching.NewZeroUint()
		for _, trade := range ack.Trades {
			sum = sum.Add(trade.Quantity)
		}
		require.True(t, sum.Equals(ack.ExecutedQuantity))
		require.True(t, sum.Add(ack.RemainingQuantity).Equals(units(20)))
	})

	t.Run("duplicate order id is rejected", func(t *testing.T) {
		engine := newEngine(t)

		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(105), units(10)))
		require.ErrorIs(t, err, matching.ErrOrderDuplicate)
		require.Equal(t, matching.OrderStatusRejected, ack.Status)

		// The original order is untouched.
		ob := engine.OrderBook(symbolID)
		require.True(t, ob.Order(1).Price().Equals(units(100)))
		require.Equal(t, 1, ob.Size())
	})

	t.Run("invalid orders are rejected before touching the book", func(t *testing.T) {
		engine := newEngine(t)

		// Zero quantity.
		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideBuy, units(100), matching.NewZeroUint()))
		require.ErrorIs(t, err, matching.ErrInvalidOrderQuantity)

		// Zero price on a limit order.
		_, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 1, matching.OrderSideBuy, matching.NewZeroUint(), units(1)))
		require.ErrorIs(t, err, matching.ErrInvalidOrderPrice)

		// Zero order id.
		_, err = engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 0, 1, matching.OrderSideBuy, units(100), units(1)))
		require.ErrorIs(t, err, matching.ErrInvalidOrderID)

		require.True(t, engine.OrderBook(symbolID).IsEmpty())
	})

	t.Run("cancel resting order", func(t *testing.T) {
		engine := newEngine(t)

		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideBuy, units(100), units(10)))
		require.NoError(t, err)

		require.NoError(t, engine.CancelOrder(symbolID, 1))
		require.True(t, engine.OrderBook(symbolID).IsEmpty())
		require.False(t, engine.OrderBook(symbolID).TopOfBook().HasBid)

		// Second cancel of the same id.
		require.ErrorIs(t, engine.CancelOrder(symbolID, 1), matching.ErrOrderNotFound)
	})

	t.Run("book never rests crossed", func(t *testing.T) {
		engine := newEngine(t)
		ob := engine.OrderBook(symbolID)

		prices := []struct {
			id    uint64
			side  matching.OrderSide
			price uint64
			qty   uint64
		}{
			{1, matching.OrderSideBuy, 98, 5},
			{2, matching.OrderSideSell, 102, 5},
			{3, matching.OrderSideBuy, 101, 3},
			{4, matching.OrderSideSell, 99, 10},
			{5, matching.OrderSideBuy, 103, 2},
		}
		for _, p := range prices {
			_, err := engine.SubmitOrder(matching.NewLimitOrder(
				symbolID, p.id, p.id, p.side, units(p.price), units(p.qty)))
			require.NoError(t, err)

			top := ob.TopOfBook()
			if top.HasBid && top.HasAsk {
				require.True(t, top.BidPrice.LessThan(top.AskPrice))
			}
		}
		require.False(t, ob.IsHalted())
	})
}
