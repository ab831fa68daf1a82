package engine

import "github.com/google/uuid"

// OrderKind distinguishes the three inbound command shapes Order carries.
type OrderKind int

const (
	MarketOrder OrderKind = iota
	LimitOrder
	CancelOrder
)

// Order is the tagged inbound command: a Market order, a Limit order, or a
// Cancel, discriminated by Kind. Only the fields relevant to Kind are
// populated by the constructors below; Execute never reads a field outside
// its Kind's contract.
type Order struct {
	Kind  OrderKind
	ID    uuid.UUID
	Side  Side
	Qty   float64 // Market, Limit
	Price float64 // Limit only
}

// NewMarketOrder builds a Market { id, qty, side } command: cross at any
// price, never rest.
func NewMarketOrder(id uuid.UUID, side Side, qty float64) Order {
	return Order{Kind: MarketOrder, ID: id, Side: side, Qty: qty}
}

// NewLimitOrder builds a Limit { id, price, qty, side } command: cross up
// to price, rest any residual.
func NewLimitOrder(id uuid.UUID, side Side, price, qty float64) Order {
	return Order{Kind: LimitOrder, ID: id, Side: side, Qty: qty, Price: price}
}

// NewCancelOrder builds a Cancel { id } command: remove a resting order.
func NewCancelOrder(id uuid.UUID) Order {
	return Order{Kind: CancelOrder, ID: id}
}
