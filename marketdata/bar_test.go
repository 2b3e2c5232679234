package marketdata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venuelabs/matching-venue/matching"
)

func fp(s string) matching.Uint {
	u, err := matching.NewUintFromFloatString(s)
	if err != nil {
		panic(err)
	}
	return u
}

func TestSyntheticOrders(t *testing.T) {
	symbol := matching.NewSymbol(1, "AAPL")
	tick := fp("0.01")
	ids := matching.NewSequence()

	t.Run("bid and ask straddle the close", func(t *testing.T) {
		bar := Bar{Close: fp("100"), Volume: fp("50000")}

		orders := bar.SyntheticOrders(symbol, tick, ids, 42)
		require.Len(t, orders, 2)

		bid, ask := orders[0], orders[1]
		require.True(t, bid.IsBuy())
		require.True(t, ask.IsSell())
		require.Equal(t, uint64(42), bid.AccountID())

		// 0.1% spread around 100.
		require.Equal(t, "99.9", bid.Price().ToFloatString())
		require.Equal(t, "100.1", ask.Price().ToFloatString())

		// 0.1% of volume.
		require.Equal(t, "50", bid.Quantity().ToFloatString())
		require.Equal(t, "50", ask.Quantity().ToFloatString())

		require.NotEqual(t, bid.ID(), ask.ID())
	})

	t.Run("quantity floor", func(t *testing.T) {
		bar := Bar{Close: fp("100"), Volume: fp("1000")}

		orders := bar.SyntheticOrders(symbol, tick, ids, 42)
		require.Len(t, orders, 2)
		require.Equal(t, "10", orders[0].Quantity().ToFloatString())
	})

	t.Run("prices are rounded to the tick", func(t *testing.T) {
		bar := Bar{Close: fp("101.333"), Volume: fp("50000")}

		orders := bar.SyntheticOrders(symbol, tick, ids, 42)
		require.Len(t, orders, 2)

		// 101.333 -/+ 0.101333, rounded to 0.01.
		require.Equal(t, "101.23", orders[0].Price().ToFloatString())
		require.Equal(t, "101.43", orders[1].Price().ToFloatString())
	})

	t.Run("zero close produces nothing", func(t *testing.T) {
		bar := Bar{Close: matching.NewZeroUint(), Volume: fp("50000")}
		require.Empty(t, bar.SyntheticOrders(symbol, tick, ids, 42))
	})
}

func TestRoundToTick(t *testing.T) {
	tick := fp("0.01")

	tc := []struct {
		price    string
		expected string
	}{
		{"100", "100"},
		{"100.004", "100"},
		{"100.005", "100.01"},
		{"100.006", "100.01"},
		{"99.999", "100"},
	}
	for _, v := range tc {
		require.Equal(t, v.expected, roundToTick(fp(v.price), tick).ToFloatString(), v.price)
	}

	// Zero tick leaves the price untouched.
	require.Equal(t, "1.234", roundToTick(fp("1.234"), matching.NewZeroUint()).ToFloatString())
}
