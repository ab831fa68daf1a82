// Package engine implements the execute state machine: the market/limit/
// cancel matching engine sitting on top of the price, level, and book
// packages.
package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ironbook/internal/book"
	"ironbook/internal/level"
	"ironbook/internal/price"
)

// Config configures an Engine at construction. There is no global state;
// every Engine owns its own books and index.
type Config struct {
	// Digits is the price encoder's decimal resolution, in [0, 18].
	Digits uint
	// ArenaCapacity hints the order-id index's initial capacity.
	ArenaCapacity int
	// QueueCapacity hints each new level queue's initial capacity.
	QueueCapacity int
}

// DefaultConfig returns the spec's default resolution of 8 decimal digits
// and no capacity hints.
func DefaultConfig() Config {
	return Config{Digits: 8}
}

// Engine is the single-writer matching engine for one instrument: two book
// sides plus the order-id index. Execute runs to completion synchronously;
// there are no suspension points and no background state.
type Engine struct {
	encoder price.Encoder
	bid     *book.Side
	ask     *book.Side
	index   map[uuid.UUID]location
	qCap    int
}

// New constructs an Engine from cfg. It fails only if cfg.Digits is out of
// range.
func New(cfg Config) (*Engine, error) {
	enc, err := price.NewEncoder(cfg.Digits)
	if err != nil {
		return nil, err
	}
	return &Engine{
		encoder: enc,
		bid:     book.NewBidSide(),
		ask:     book.NewAskSide(),
		index:   make(map[uuid.UUID]location, cfg.ArenaCapacity),
		qCap:    cfg.QueueCapacity,
	}, nil
}

func (e *Engine) sideFor(s Side) *book.Side {
	if s == Bid {
		return e.bid
	}
	return e.ask
}

func validQty(qty float64) bool {
	return !math.IsNaN(qty) && !math.IsInf(qty, 0) && qty > 0
}

// Execute is the single entry point: it validates, matches, and either
// rests or terminates order, returning exactly one OrderEvent.
func (e *Engine) Execute(order Order) OrderEvent {
	switch order.Kind {
	case MarketOrder:
		return e.executeMarket(order)
	case LimitOrder:
		return e.executeLimit(order)
	case CancelOrder:
		return e.executeCancel(order)
	default:
		return rejected(order.ID, BadQty)
	}
}

// executeMarket implements §4.4.2: sweep the opposite side at any price
// until qty is exhausted or the book runs dry. Residual quantity, if any,
// is discarded — market orders never rest.
func (e *Engine) executeMarket(order Order) OrderEvent {
	if !validQty(order.Qty) {
		log.Debug().Str("id", order.ID.String()).Msg("market order rejected: bad qty")
		return rejected(order.ID, BadQty)
	}

	opp := e.sideFor(order.Side.opposite())
	fills, remaining := e.cross(order, opp, order.Qty, alwaysCrossable)
	filledQty := order.Qty - remaining

	switch {
	case len(fills) == 0:
		return unfilled(order.ID)
	case remaining == 0:
		return filled(order.ID, filledQty, fills)
	default:
		return partiallyFilled(order.ID, filledQty, fills)
	}
}

// executeLimit implements §4.4.3: cross against the opposite side while
// crossable, then rest any residual on this side at limitTick.
func (e *Engine) executeLimit(order Order) OrderEvent {
	if !validQty(order.Qty) {
		log.Debug().Str("id", order.ID.String()).Msg("limit order rejected: bad qty")
		return rejected(order.ID, BadQty)
	}

	limitTick, err := e.encoder.Encode(order.Price)
	if err != nil {
		log.Debug().Str("id", order.ID.String()).Float64("price", order.Price).Msg("limit order rejected: bad price")
		return rejected(order.ID, BadPrice)
	}

	if _, exists := e.index[order.ID]; exists {
		log.Debug().Str("id", order.ID.String()).Msg("limit order rejected: duplicate id")
		return rejected(order.ID, DuplicateID)
	}

	own := e.sideFor(order.Side)
	opp := e.sideFor(order.Side.opposite())
	crossable := crossablePredicate(order.Side, limitTick)

	fills, remaining := e.cross(order, opp, order.Qty, crossable)
	filledQty := order.Qty - remaining

	if remaining == 0 {
		return filled(order.ID, filledQty, fills)
	}

	q := own.InsertLevel(limitTick, e.qCap)
	q.PushBack(&level.RestingOrder{ID: order.ID, QtyRemaining: remaining})
	e.index[order.ID] = location{side: order.Side, tick: limitTick}

	if len(fills) == 0 {
		return placed(order.ID)
	}
	return partiallyFilled(order.ID, filledQty, fills)
}

// executeCancel implements §4.4.4.
func (e *Engine) executeCancel(order Order) OrderEvent {
	loc, ok := e.index[order.ID]
	if !ok {
		log.Debug().Str("id", order.ID.String()).Msg("cancel rejected: not found")
		return rejected(order.ID, NotFound)
	}

	side := e.sideFor(loc.side)
	if q := side.LevelAt(loc.tick); q != nil {
		q.Remove(order.ID)
		if q.IsEmpty() {
			side.RemoveLevel(loc.tick)
		}
	}
	delete(e.index, order.ID)
	return canceled(order.ID)
}

func alwaysCrossable(price.Tick) bool { return true }

func crossablePredicate(side Side, limitTick price.Tick) func(price.Tick) bool {
	if side == Bid {
		// Bid limit: continue while ask.best() <= limit_tick.
		return func(t price.Tick) bool { return t <= limitTick }
	}
	// Ask limit: continue while bid.best() >= limit_tick.
	return func(t price.Tick) bool { return t >= limitTick }
}

// cross drains opp best-price-first, head-of-queue first, while crossable
// holds and remaining > 0. It is shared by market and limit matching: the
// only difference between the two is the crossable predicate.
func (e *Engine) cross(taker Order, opp *book.Side, remaining float64, crossable func(price.Tick) bool) ([]FillMetadata, float64) {
	var fills []FillMetadata

	for remaining > 0 {
		t, ok := opp.Best()
		if !ok || !crossable(t) {
			break
		}

		q := opp.LevelAt(t)
		for remaining > 0 && !q.IsEmpty() {
			makerID := q.PeekHead().ID
			drained, total := q.DrainHead(remaining)
			remaining -= drained

			fills = append(fills, FillMetadata{
				TakerID:   taker.ID,
				MakerID:   makerID,
				Qty:       drained,
				Price:     e.encoder.Decode(t),
				TakerSide: taker.Side,
				TotalFill: total,
			})

			if total {
				delete(e.index, makerID)
			}
		}

		if q.IsEmpty() {
			opp.RemoveLevel(t)
		}
	}

	return fills, remaining
}
