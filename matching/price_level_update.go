package matching

// PriceLevelUpdateKind is an enumeration of possible price level update kinds.
type PriceLevelUpdateKind uint8

const (
	PriceLevelUpdateKindAdd PriceLevelUpdateKind = iota + 1
	PriceLevelUpdateKindUpdate
	PriceLevelUpdateKindDelete
)

// PriceLevelUpdate describes a single change of a price level caused by
// adding, reducing or deleting a resting order.
type PriceLevelUpdate struct {
	ID     uint64
	Kind   PriceLevelUpdateKind
	Side   OrderSide
	Price  Uint
	Volume Uint
	Orders int
	Top    bool
}
