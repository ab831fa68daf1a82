// Package level implements the per-price-level FIFO of resting orders: the
// time-priority half of price/time priority.
package level

import "github.com/google/uuid"

// RestingOrder is a limit order (or its residual) held on the book awaiting
// a counterparty.
type RestingOrder struct {
	ID           uuid.UUID
	QtyRemaining float64
}

// Queue is an ordered sequence of resting orders sharing one side and one
// tick, in strict arrival order. The zero value is an empty, usable queue.
//
// Queue is slice-backed: removal from the head or an interior id reslices
// the backing array, matching how the teacher's matching loop consumes a
// price level (e.g. orderbook.go's `bestAsk.orders = bestAsk.orders[aIdx:]`).
type Queue struct {
	orders []*RestingOrder
}

// NewQueue returns an empty queue, optionally pre-reserving capacity.
func NewQueue(capacityHint int) *Queue {
	return &Queue{orders: make([]*RestingOrder, 0, capacityHint)}
}

// PushBack appends order in arrival order.
func (q *Queue) PushBack(order *RestingOrder) {
	q.orders = append(q.orders, order)
}

// PeekHead returns the oldest order without removing it, or nil if empty.
func (q *Queue) PeekHead() *RestingOrder {
	if len(q.orders) == 0 {
		return nil
	}
	return q.orders[0]
}

// PopHead removes and returns the oldest order, or nil if empty.
func (q *Queue) PopHead() *RestingOrder {
	if len(q.orders) == 0 {
		return nil
	}
	head := q.orders[0]
	q.orders = q.orders[1:]
	return head
}

// DrainHead reduces the head order's remaining quantity by min(qty,
// head.QtyRemaining). If the head reaches zero it is popped and totalFill
// is true. DrainHead on an empty queue is a no-op returning (0, false).
func (q *Queue) DrainHead(qty float64) (drained float64, totalFill bool) {
	head := q.PeekHead()
	if head == nil {
		return 0, false
	}

	drained = min(qty, head.QtyRemaining)
	head.QtyRemaining -= drained
	if head.QtyRemaining == 0 {
		q.PopHead()
		return drained, true
	}
	return drained, false
}

// Remove removes the resting order with the given id, preserving the
// relative order of survivors. Reports whether an order was found.
func (q *Queue) Remove(id uuid.UUID) (*RestingOrder, bool) {
	for i, order := range q.orders {
		if order.ID == id {
			removed := order
			q.orders = append(q.orders[:i], q.orders[i+1:]...)
			return removed, true
		}
	}
	return nil, false
}

// IsEmpty reports whether the queue holds no resting orders.
func (q *Queue) IsEmpty() bool {
	return len(q.orders) == 0
}

// Len reports the number of resting orders in the queue.
func (q *Queue) Len() int {
	return len(q.orders)
}

// AggregateQty sums the remaining quantity of every resting order in the
// queue, used by depth snapshots.
func (q *Queue) AggregateQty() float64 {
	var total float64
	for _, order := range q.orders {
		total += order.QtyRemaining
	}
	return total
}
