package engine

import "github.com/google/uuid"

// EventKind discriminates OrderEvent's closed set of terminal outcomes.
type EventKind int

const (
	EventUnfilled EventKind = iota
	EventPlaced
	EventPartiallyFilled
	EventFilled
	EventCanceled
	EventRejected
)

// OrderEvent is the tagged output of Execute: exactly one per inbound
// order, discriminated by Kind.
//
//   - Unfilled: a market order that crossed no liquidity.
//   - Placed: a limit order that rested with no fills.
//   - PartiallyFilled: some but not all of the order's quantity crossed.
//   - Filled: the order's entire quantity crossed.
//   - Canceled: a cancel removed a resting order.
//   - Rejected: validation failed before any mutation.
type OrderEvent struct {
	Kind      EventKind
	ID        uuid.UUID
	FilledQty float64
	Fills     []FillMetadata
	Reason    RejectReason
}

func unfilled(id uuid.UUID) OrderEvent {
	return OrderEvent{Kind: EventUnfilled, ID: id}
}

func placed(id uuid.UUID) OrderEvent {
	return OrderEvent{Kind: EventPlaced, ID: id}
}

func partiallyFilled(id uuid.UUID, filledQty float64, fills []FillMetadata) OrderEvent {
	return OrderEvent{Kind: EventPartiallyFilled, ID: id, FilledQty: filledQty, Fills: fills}
}

func filled(id uuid.UUID, filledQty float64, fills []FillMetadata) OrderEvent {
	return OrderEvent{Kind: EventFilled, ID: id, FilledQty: filledQty, Fills: fills}
}

func canceled(id uuid.UUID) OrderEvent {
	return OrderEvent{Kind: EventCanceled, ID: id}
}

func rejected(id uuid.UUID, reason RejectReason) OrderEvent {
	return OrderEvent{Kind: EventRejected, ID: id, Reason: reason}
}
