package matching_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	matching "github.com/venuelabs/matching-venue/matching"
	mockmatching "github.com/venuelabs/matching-venue/matching/mocks"
)

func TestRiskAdmission(t *testing.T) {
	const symbolID uint32 = 10

	errLimit := errors.New("position limit exceeded")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newEngine := func(t *testing.T, risk matching.RiskChecker) *matching.Engine {
		handler := mockmatching.NewMockHandler(ctrl)
		setupMockHandler(t, handler)
		engine := matching.NewEngine(handler, risk, nil, false)
		_, err := engine.AddOrderBook(matching.NewSymbol(symbolID, "TEST"))
		require.NoError(t, err)
		return engine
	}

	t.Run("denied order leaves the book unchanged", func(t *testing.T) {
		risk := mockmatching.NewMockRiskChecker(ctrl)
		engine := newEngine(t, risk)

		risk.EXPECT().
			CheckAdmission(uint64(1), gomock.Any(), matching.OrderSideBuy, gomock.Any(), gomock.Any()).
			Return(errLimit)

		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideBuy, units(100), units(10)))
		require.ErrorIs(t, err, errLimit)
		require.Equal(t, matching.OrderStatusRejected, ack.Status)
		require.Empty(t, ack.Trades)

		ob := engine.OrderBook(symbolID)
		require.True(t, ob.IsEmpty())
		require.False(t, ob.TopOfBook().HasBid)
	})

	t.Run("limit orders are valued at the limit price", func(t *testing.T) {
		risk := mockmatching.NewMockRiskChecker(ctrl)
		engine := newEngine(t, risk)

		risk.EXPECT().
			CheckAdmission(uint64(1), gomock.Any(), matching.OrderSideSell, units(10), units(100)).
			Return(nil)

		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)
	})

	t.Run("market orders are valued at the best opposite price", func(t *testing.T) {
		risk := mockmatching.NewMockRiskChecker(ctrl)
		engine := newEngine(t, risk)

		risk.EXPECT().
			CheckAdmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)

		// The market buy must be valued at the resting ask price.
		risk.EXPECT().
			CheckAdmission(uint64(2), gomock.Any(), matching.OrderSideBuy, units(5), units(100)).
			Return(nil)
		_, err = engine.SubmitOrder(matching.NewMarketOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(5)))
		require.NoError(t, err)
	})

	t.Run("market orders fall back to the last trade price", func(t *testing.T) {
		risk := mockmatching.NewMockRiskChecker(ctrl)
		engine := newEngine(t, risk)

		risk.EXPECT().
			CheckAdmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)
		ack, err := engine.SubmitOrder(matching.NewMarketOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(10)))
		require.NoError(t, err)
		require.Equal(t, matching.OrderStatusFilled, ack.Status)

		// Book is now empty on both sides, last trade was at 100.
		risk.EXPECT().
			CheckAdmission(uint64(3), gomock.Any(), matching.OrderSideBuy, units(1), units(100)).
			Return(nil)
		_, err = engine.SubmitOrder(matching.NewMarketOrder(
			symbolID, 3, 3, matching.OrderSideBuy, units(1)))
		require.NoError(t, err)
	})

	t.Run("risk is consulted before any matching", func(t *testing.T) {
		risk := mockmatching.NewMockRiskChecker(ctrl)
		engine := newEngine(t, risk)

		risk.EXPECT().
			CheckAdmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		_, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 1, 1, matching.OrderSideSell, units(100), units(10)))
		require.NoError(t, err)

		// The aggressive buy is denied: no trade may happen.
		risk.EXPECT().
			CheckAdmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errLimit)
		ack, err := engine.SubmitOrder(matching.NewLimitOrder(
			symbolID, 2, 2, matching.OrderSideBuy, units(100), units(10)))
		require.ErrorIs(t, err, errLimit)
		require.Empty(t, ack.Trades)

		// The resting sell is intact.
		require.True(t, engine.OrderBook(symbolID).Order(1).RestQuantity().Equals(units(10)))
	})
}
