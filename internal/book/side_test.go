package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironbook/internal/level"
	"ironbook/internal/price"
)

func TestBidSide_BestIsHighestTick(t *testing.T) {
	side := NewBidSide()
	side.InsertLevel(price.Tick(100), 0)
	side.InsertLevel(price.Tick(300), 0)
	side.InsertLevel(price.Tick(200), 0)

	best, ok := side.Best()
	require.True(t, ok)
	assert.Equal(t, price.Tick(300), best)
}

func TestAskSide_BestIsLowestTick(t *testing.T) {
	side := NewAskSide()
	side.InsertLevel(price.Tick(100), 0)
	side.InsertLevel(price.Tick(300), 0)
	side.InsertLevel(price.Tick(200), 0)

	best, ok := side.Best()
	require.True(t, ok)
	assert.Equal(t, price.Tick(100), best)
}

func TestSide_EmptyHasNoBest(t *testing.T) {
	side := NewBidSide()
	_, ok := side.Best()
	assert.False(t, ok)
}

func TestSide_InsertLevelIsIdempotent(t *testing.T) {
	side := NewBidSide()
	a := side.InsertLevel(price.Tick(100), 0)
	b := side.InsertLevel(price.Tick(100), 0)
	assert.Same(t, a, b)
	assert.Equal(t, 1, side.Len())
}

func TestSide_RemoveLevel(t *testing.T) {
	side := NewBidSide()
	side.InsertLevel(price.Tick(100), 0)
	side.RemoveLevel(price.Tick(100))

	assert.Equal(t, 0, side.Len())
	assert.Nil(t, side.LevelAt(price.Tick(100)))
}

func TestBidSide_WalkBestFirst_Descending(t *testing.T) {
	side := NewBidSide()
	side.InsertLevel(price.Tick(100), 0)
	side.InsertLevel(price.Tick(300), 0)
	side.InsertLevel(price.Tick(200), 0)

	var walked []price.Tick
	side.WalkBestFirst(func(tick price.Tick, _ *level.Queue) bool {
		walked = append(walked, tick)
		return true
	})

	assert.Equal(t, []price.Tick{300, 200, 100}, walked)
}
