package marketdata

import (
	"encoding/json"
	"time"

	"github.com/venuelabs/matching-venue/matching"
)

// Bar is one minute of upstream market data.
type Bar struct {
	Timestamp time.Time
	Open      matching.Uint
	High      matching.Uint
	Low       matching.Uint
	Close     matching.Uint
	Volume    matching.Uint
}

// barPayload matches the upstream field naming of a single time series entry.
type barPayload struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// UnmarshalJSON decodes the upstream decimal strings into fixed-point values.
func (b *Bar) UnmarshalJSON(data []byte) error {
	var payload barPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	var err error
	if b.Open, err = matching.NewUintFromFloatString(payload.Open); err != nil {
		return err
	}
	if b.High, err = matching.NewUintFromFloatString(payload.High); err != nil {
		return err
	}
	if b.Low, err = matching.NewUintFromFloatString(payload.Low); err != nil {
		return err
	}
	if b.Close, err = matching.NewUintFromFloatString(payload.Close); err != nil {
		return err
	}
	if b.Volume, err = matching.NewUintFromFloatString(payload.Volume); err != nil {
		return err
	}
	return nil
}

// minOrderQuantity is the floor for synthetic order sizes: 10 units.
var minOrderQuantity = matching.NewUint(10).Mul64(matching.UintPrecision)

// SyntheticOrders derives a passive bid/ask pair from the bar: limit orders
// 0.1% below and above the close price, rounded to the tick size, sized at
// 0.1% of the bar volume with a floor of 10 units.
func (b Bar) SyntheticOrders(symbol matching.Symbol, tickSize matching.Uint, ids matching.Sequence, accountID uint64) []matching.Order {
	spread := b.Close.Div64(1000)
	quantity := matching.Max(b.Volume.Div64(1000), minOrderQuantity)

	bidPrice := roundToTick(b.Close.Sub(spread), tickSize)
	askPrice := roundToTick(b.Close.Add(spread), tickSize)
	if bidPrice.IsZero() || askPrice.IsZero() {
		return nil
	}

	return []matching.Order{
		matching.NewLimitOrder(symbol.ID(), ids.Next(), accountID, matching.OrderSideBuy, bidPrice, quantity),
		matching.NewLimitOrder(symbol.ID(), ids.Next(), accountID, matching.OrderSideSell, askPrice, quantity),
	}
}

// roundToTick rounds the price to the nearest multiple of the tick size.
func roundToTick(price, tickSize matching.Uint) matching.Uint {
	if tickSize.IsZero() {
		return price
	}
	ticks, remainder := price.QuoRem(tickSize)
	if remainder.Mul64(2).GreaterThanOrEqualTo(tickSize) {
		ticks = ticks.Add64(1)
	}
	return ticks.Mul(tickSize)
}
