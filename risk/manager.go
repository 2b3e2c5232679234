package risk

import (
	"sync"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
)

// Limits bound what a single account may do in a single instrument.
// A zero field disables the corresponding check.
type Limits struct {
	// MaxOrderQuantity caps the quantity of a single order.
	MaxOrderQuantity matching.Uint
	// MaxPositionQuantity caps the absolute position after the order
	// would fully execute.
	MaxPositionQuantity matching.Uint
	// MaxNotional caps the projected position valued at the admission price.
	MaxNotional matching.Uint
}

type positionKey struct {
	accountID uint64
	symbolID  uint32
}

// Manager keeps per-account per-instrument positions and admits orders
// against configured limits. It implements matching.RiskChecker.
// Admission takes a conservative projection: the order is assumed to fully
// execute in the direction increasing exposure.
type Manager struct {
	log *zap.Logger

	mu        sync.RWMutex
	defaults  Limits
	limits    map[uint32]Limits
	positions map[positionKey]*Position
	marks     map[uint32]matching.Uint
}

// NewManager creates a manager with the given default limits.
func NewManager(log *zap.Logger, defaults Limits) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:       log,
		defaults:  defaults,
		limits:    make(map[uint32]Limits),
		positions: make(map[positionKey]*Position),
		marks:     make(map[uint32]matching.Uint),
	}
}

// SetLimits overrides the default limits for one instrument.
func (m *Manager) SetLimits(symbolID uint32, limits Limits) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limits[symbolID] = limits
}

// SetMarkPrice sets the price used to value open positions of the instrument.
func (m *Manager) SetMarkPrice(symbolID uint32, price matching.Uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks[symbolID] = price
}

// CheckAdmission decides whether the order may enter the market.
// It never mutates positions: only executed trades move them.
func (m *Manager) CheckAdmission(accountID uint64, symbol matching.Symbol, side matching.OrderSide, quantity matching.Uint, price matching.Uint) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limits := m.limitsFor(symbol.ID())

	if !limits.MaxOrderQuantity.IsZero() && quantity.GreaterThan(limits.MaxOrderQuantity) {
		return ErrOrderTooLarge
	}

	// Project the position as if the order fully executes
	projected := NewSigned(quantity, side == matching.OrderSideSell)
	if position, ok := m.positions[positionKey{accountID, symbol.ID()}]; ok {
		projected = projected.Add(position.Quantity())
	}

	if !limits.MaxPositionQuantity.IsZero() && projected.Abs().GreaterThan(limits.MaxPositionQuantity) {
		return ErrPositionLimitExceeded
	}

	if !limits.MaxNotional.IsZero() && !price.IsZero() {
		notional := projected.Abs().Mul(price).Div64(matching.UintPrecision)
		if notional.GreaterThan(limits.MaxNotional) {
			return ErrNotionalLimitExceeded
		}
	}

	return nil
}

// Apply folds an executed trade into the positions of both counterparties.
// Every execution event must be applied exactly once.
func (m *Manager) Apply(trade matching.ExecutionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buyer := m.position(trade.BuyerAccountID(), trade.SymbolID)
	buyer.applyFill(matching.OrderSideBuy, trade.Quantity, trade.Price)

	seller := m.position(trade.SellerAccountID(), trade.SymbolID)
	seller.applyFill(matching.OrderSideSell, trade.Quantity, trade.Price)

	m.log.Debug("trade applied",
		zap.String("trade_id", trade.ID.String()),
		zap.String("symbol", trade.Symbol),
		zap.Uint64("buyer", trade.BuyerAccountID()),
		zap.Uint64("seller", trade.SellerAccountID()),
		zap.String("price", trade.Price.ToFloatString()),
		zap.String("quantity", trade.Quantity.ToFloatString()),
	)
}

// PositionSnapshot is a read-only copy of one account's exposure in one instrument.
type PositionSnapshot struct {
	AccountID     uint64        `json:"account_id"`
	SymbolID      uint32        `json:"symbol_id"`
	Quantity      Signed        `json:"quantity"`
	AvgEntryPrice matching.Uint `json:"avg_entry_price"`
	RealizedPnL   Signed        `json:"realized_pnl"`
	UnrealizedPnL Signed        `json:"unrealized_pnl"`
	MarkPrice     matching.Uint `json:"mark_price"`
}

// Snapshot returns the current position of the account in the instrument.
// A flat never-traded position is returned as the zero snapshot.
func (m *Manager) Snapshot(accountID uint64, symbolID uint32) PositionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := PositionSnapshot{AccountID: accountID, SymbolID: symbolID}
	mark := m.marks[symbolID]
	snapshot.MarkPrice = mark

	if position, ok := m.positions[positionKey{accountID, symbolID}]; ok {
		snapshot.Quantity = position.Quantity()
		snapshot.AvgEntryPrice = position.AvgEntryPrice()
		snapshot.RealizedPnL = position.RealizedPnL()
		snapshot.UnrealizedPnL = position.UnrealizedPnL(mark)
	}

	return snapshot
}

// Snapshots returns all currently open or previously traded positions.
func (m *Manager) Snapshots() []PositionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := make([]PositionSnapshot, 0, len(m.positions))
	for key, position := range m.positions {
		mark := m.marks[key.symbolID]
		snapshots = append(snapshots, PositionSnapshot{
			AccountID:     key.accountID,
			SymbolID:      key.symbolID,
			Quantity:      position.Quantity(),
			AvgEntryPrice: position.AvgEntryPrice(),
			RealizedPnL:   position.RealizedPnL(),
			UnrealizedPnL: position.UnrealizedPnL(mark),
		})
	}
	return snapshots
}

func (m *Manager) limitsFor(symbolID uint32) Limits {
	if limits, ok := m.limits[symbolID]; ok {
		return limits
	}
	return m.defaults
}

func (m *Manager) position(accountID uint64, symbolID uint32) *Position {
	key := positionKey{accountID, symbolID}
	position, ok := m.positions[key]
	if !ok {
		position = new(Position)
		m.positions[key] = position
	}
	return position
}
