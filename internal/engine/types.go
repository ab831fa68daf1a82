package engine

import (
	"github.com/google/uuid"

	"ironbook/internal/price"
)

// Side is a closed tagged variant: an order is either a Bid or an Ask.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "Bid"
	}
	return "Ask"
}

func (s Side) opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// RejectReason is the closed taxonomy of reasons execute can reject an
// inbound order.
type RejectReason int

const (
	BadQty RejectReason = iota
	BadPrice
	DuplicateID
	NotFound
)

func (r RejectReason) String() string {
	switch r {
	case BadQty:
		return "BadQty"
	case BadPrice:
		return "BadPrice"
	case DuplicateID:
		return "DuplicateID"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// FillMetadata describes a single match consumed while executing an inbound
// order.
type FillMetadata struct {
	TakerID   uuid.UUID
	MakerID   uuid.UUID
	Qty       float64
	Price     float64
	TakerSide Side
	TotalFill bool
}

// location is the order-id index's lookup descriptor: where a resting order
// lives, not a pointer to it. Removal still goes through the level queue.
type location struct {
	side Side
	tick price.Tick
}
