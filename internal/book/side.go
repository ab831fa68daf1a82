// Package book holds the ordered tick -> level mapping for one side of the
// book (bids or asks), backed by tidwall/btree the same way the teacher's
// engine keys its PriceLevels.
package book

import (
	"github.com/tidwall/btree"

	"ironbook/internal/level"
	"ironbook/internal/price"
)

// entry is the btree item: a tick paired with its level queue.
type entry struct {
	tick  price.Tick
	level *level.Queue
}

// Side is an ordered mapping from tick to level queue, walked best-price
// first. Bid sides are constructed descending, ask sides ascending.
type Side struct {
	tree *btree.BTreeG[entry]
}

// NewBidSide returns a Side ordered with the highest tick first.
func NewBidSide() *Side {
	return &Side{tree: btree.NewBTreeG(func(a, b entry) bool {
		return a.tick > b.tick
	})}
}

// NewAskSide returns a Side ordered with the lowest tick first.
func NewAskSide() *Side {
	return &Side{tree: btree.NewBTreeG(func(a, b entry) bool {
		return a.tick < b.tick
	})}
}

// Best returns the best (first-walked) tick on this side, or false if the
// side holds no levels.
func (s *Side) Best() (price.Tick, bool) {
	e, ok := s.tree.Min()
	if !ok {
		return 0, false
	}
	return e.tick, true
}

// LevelAt returns the level queue at tick, or nil if no level exists there.
func (s *Side) LevelAt(tick price.Tick) *level.Queue {
	e, ok := s.tree.Get(entry{tick: tick})
	if !ok {
		return nil
	}
	return e.level
}

// InsertLevel creates an empty level at tick if one does not already exist,
// and returns it.
func (s *Side) InsertLevel(tick price.Tick, queueCapacityHint int) *level.Queue {
	if existing := s.LevelAt(tick); existing != nil {
		return existing
	}
	q := level.NewQueue(queueCapacityHint)
	s.tree.Set(entry{tick: tick, level: q})
	return q
}

// RemoveLevel deletes the level at tick, regardless of whether it is empty.
// Callers are expected to call this only once a level has drained to empty,
// preserving the invariant that every tick present maps to a non-empty
// queue.
func (s *Side) RemoveLevel(tick price.Tick) {
	s.tree.Delete(entry{tick: tick})
}

// Len reports the number of distinct price levels on this side.
func (s *Side) Len() int {
	return s.tree.Len()
}

// WalkBestFirst calls fn for each (tick, level) in best-price-first order,
// stopping early if fn returns false. The walk is restartable across calls
// but not safe to resume across a mutation mid-walk.
func (s *Side) WalkBestFirst(fn func(tick price.Tick, q *level.Queue) bool) {
	s.tree.Scan(func(e entry) bool {
		return fn(e.tick, e.level)
	})
}
