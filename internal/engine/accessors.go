package engine

import (
	"ironbook/internal/level"
	"ironbook/internal/price"
)

// DepthLevel is one aggregated rung of a depth snapshot: a price and the
// total resting quantity across every order at that tick.
type DepthLevel struct {
	Price float64
	Qty   float64
}

// BestBid returns the best (highest) resting bid price, or false if the
// bid side is empty.
func (e *Engine) BestBid() (float64, bool) {
	t, ok := e.bid.Best()
	if !ok {
		return 0, false
	}
	return e.encoder.Decode(t), true
}

// BestAsk returns the best (lowest) resting ask price, or false if the ask
// side is empty.
func (e *Engine) BestAsk() (float64, bool) {
	t, ok := e.ask.Best()
	if !ok {
		return 0, false
	}
	return e.encoder.Decode(t), true
}

// Spread returns BestAsk() - BestBid(), or false if either side is empty.
func (e *Engine) Spread() (float64, bool) {
	bid, ok := e.BestBid()
	if !ok {
		return 0, false
	}
	ask, ok := e.BestAsk()
	if !ok {
		return 0, false
	}
	return ask - bid, true
}

// MidPrice returns the midpoint of BestBid() and BestAsk(), or false if
// either side is empty.
func (e *Engine) MidPrice() (float64, bool) {
	bid, ok := e.BestBid()
	if !ok {
		return 0, false
	}
	ask, ok := e.BestAsk()
	if !ok {
		return 0, false
	}
	return (bid + ask) / 2, true
}

// Depth returns up to maxLevels aggregated price levels on side, best-price
// first. Each level's Qty is the sum of every resting order's remaining
// quantity at that tick.
func (e *Engine) Depth(side Side, maxLevels int) []DepthLevel {
	levels := make([]DepthLevel, 0, maxLevels)
	e.sideFor(side).WalkBestFirst(func(t price.Tick, q *level.Queue) bool {
		if len(levels) >= maxLevels {
			return false
		}
		levels = append(levels, DepthLevel{Price: e.encoder.Decode(t), Qty: q.AggregateQty()})
		return true
	})
	return levels
}
