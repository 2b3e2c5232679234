package risk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venuelabs/matching-venue/matching"
)

func fp(n uint64) matching.Uint {
	return matching.NewUint(n).Mul64(matching.UintPrecision)
}

func TestPositionAverageCost(t *testing.T) {
	t.Run("open and close long realizes the difference", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideBuy, fp(100), fp(10))
		require.True(t, p.Quantity().Equals(NewSigned(fp(100), false)))
		require.True(t, p.AvgEntryPrice().Equals(fp(10)))

		p.applyFill(matching.OrderSideSell, fp(100), fp(12))
		require.True(t, p.IsFlat())
		require.True(t, p.AvgEntryPrice().IsZero())
		// (12-10) * 100 = +200
		require.True(t, p.RealizedPnL().Equals(NewSigned(fp(200), false)))
	})

	t.Run("increase averages the entry price", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideBuy, fp(10), fp(10))
		p.applyFill(matching.OrderSideBuy, fp(10), fp(20))

		require.True(t, p.Quantity().Equals(NewSigned(fp(20), false)))
		// (10*10 + 20*10) / 20 = 15
		require.True(t, p.AvgEntryPrice().Equals(fp(15)))
		require.True(t, p.RealizedPnL().IsZero())
	})

	t.Run("partial close keeps the entry price", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideBuy, fp(10), fp(10))
		p.applyFill(matching.OrderSideSell, fp(4), fp(13))

		require.True(t, p.Quantity().Equals(NewSigned(fp(6), false)))
		require.True(t, p.AvgEntryPrice().Equals(fp(10)))
		// (13-10) * 4 = +12
		require.True(t, p.RealizedPnL().Equals(NewSigned(fp(12), false)))
	})

	t.Run("reversal opens the remainder at the fill price", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideBuy, fp(10), fp(10))
		p.applyFill(matching.OrderSideSell, fp(15), fp(8))

		// 10 closed at a 2 loss each, 5 opened short at 8.
		require.True(t, p.Quantity().Equals(NewSigned(fp(5), true)))
		require.True(t, p.AvgEntryPrice().Equals(fp(8)))
		require.True(t, p.RealizedPnL().Equals(NewSigned(fp(20), true)))
	})

	t.Run("short position profits from falling prices", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideSell, fp(50), fp(20))
		require.True(t, p.Quantity().Equals(NewSigned(fp(50), true)))

		p.applyFill(matching.OrderSideBuy, fp(50), fp(15))
		require.True(t, p.IsFlat())
		// Short from 20 covered at 15: (20-15) * 50 = +250
		require.True(t, p.RealizedPnL().Equals(NewSigned(fp(250), false)))
	})

	t.Run("short increase averages the entry price", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideSell, fp(10), fp(30))
		p.applyFill(matching.OrderSideSell, fp(30), fp(10))

		require.True(t, p.Quantity().Equals(NewSigned(fp(40), true)))
		// (30*10 + 10*30) / 40 = 15
		require.True(t, p.AvgEntryPrice().Equals(fp(15)))
	})

	t.Run("realized accumulates across round trips", func(t *testing.T) {
		p := new(Position)

		p.applyFill(matching.OrderSideBuy, fp(10), fp(10))
		p.applyFill(matching.OrderSideSell, fp(10), fp(12)) // +20
		p.applyFill(matching.OrderSideBuy, fp(10), fp(12))
		p.applyFill(matching.OrderSideSell, fp(10), fp(11)) // -10

		require.True(t, p.IsFlat())
		require.True(t, p.RealizedPnL().Equals(NewSigned(fp(10), false)))
	})

	t.Run("fractional quantities and prices", func(t *testing.T) {
		p := new(Position)

		half := fp(1).Div64(2)
		p.applyFill(matching.OrderSideBuy, half, fp(100))
		p.applyFill(matching.OrderSideSell, half, fp(101))

		// 0.5 * 1 = 0.5 profit
		require.True(t, p.RealizedPnL().Equals(NewSigned(half, false)))
	})
}

func TestPositionUnrealizedPnL(t *testing.T) {
	p := new(Position)
	p.applyFill(matching.OrderSideBuy, fp(10), fp(100))

	require.True(t, p.UnrealizedPnL(fp(110)).Equals(NewSigned(fp(100), false)))
	require.True(t, p.UnrealizedPnL(fp(90)).Equals(NewSigned(fp(100), true)))
	require.True(t, p.UnrealizedPnL(matching.NewZeroUint()).IsZero())

	short := new(Position)
	short.applyFill(matching.OrderSideSell, fp(10), fp(100))
	require.True(t, short.UnrealizedPnL(fp(90)).Equals(NewSigned(fp(100), false)))
	require.True(t, short.UnrealizedPnL(fp(110)).Equals(NewSigned(fp(100), true)))
}

func TestSignedArithmetic(t *testing.T) {
	plus5 := NewSigned(fp(5), false)
	minus3 := NewSigned(fp(3), true)

	require.True(t, plus5.Add(minus3).Equals(NewSigned(fp(2), false)))
	require.True(t, minus3.Add(plus5).Equals(NewSigned(fp(2), false)))
	require.True(t, plus5.Sub(plus5).IsZero())
	require.True(t, minus3.Sub(plus5).Equals(NewSigned(fp(8), true)))
	require.True(t, plus5.Neg().Equals(NewSigned(fp(5), true)))

	// Zero keeps a positive sign
	zero := NewSigned(matching.NewZeroUint(), true)
	require.False(t, zero.IsNegative())

	require.Equal(t, "-3", minus3.ToFloatString())
	require.Equal(t, "5", plus5.ToFloatString())

	// Scaling by a fixed-point factor
	require.True(t, minus3.Mul(fp(2)).Equals(NewSigned(fp(6), true)))
}
