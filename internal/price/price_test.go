package price

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncoder_RejectsOutOfRangeDigits(t *testing.T) {
	_, err := NewEncoder(19)
	assert.ErrorIs(t, err, ErrBadDigits)
}

func TestEncode_RejectsBadPrices(t *testing.T) {
	enc := DefaultEncoder()

	for _, price := range []float64{0, -1.0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := enc.Encode(price)
		assert.ErrorIsf(t, err, ErrBadPrice, "price=%v", price)
	}
}

func TestEncode_RejectsOverflow(t *testing.T) {
	enc, err := NewEncoder(18)
	require.NoError(t, err)

	_, err = enc.Encode(1e20)
	assert.ErrorIs(t, err, ErrBadPrice)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	enc := DefaultEncoder()

	for _, price := range []float64{120.0, 0.00000001, 99999.99999999, 1.0, 50.5} {
		tick, err := enc.Encode(price)
		require.NoError(t, err)
		assert.InEpsilon(t, price, enc.Decode(tick), 1e-9)
	}
}

func TestEncode_OrderingAgreesWithPriceOrdering(t *testing.T) {
	enc := DefaultEncoder()

	low, err := enc.Encode(99.0)
	require.NoError(t, err)
	high, err := enc.Encode(100.0)
	require.NoError(t, err)

	assert.Less(t, low, high)
}

func TestEncode_SamePriceSameTick(t *testing.T) {
	enc := DefaultEncoder()

	a, err := enc.Encode(100.0)
	require.NoError(t, err)
	b, err := enc.Encode(100.0)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
