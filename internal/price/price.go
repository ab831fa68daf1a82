// Package price converts between a caller-facing float64 price and the
// exact uint64 tick used as the book's map key.
//
// Floating-point prices are convenient at the boundary but unsafe as map
// keys: NaN does not compare equal to itself and binary floats drift at the
// edges of decimal fractions. An Encoder fixes a number of significant
// decimal digits and normalizes every price to an integer tick at that
// resolution before it ever reaches a price level index.
package price

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Tick is the exact, totally-ordered key for a price level.
type Tick uint64

const (
	// MinDigits and MaxDigits bound the configurable decimal resolution.
	MinDigits = 0
	MaxDigits = 18
)

var (
	// ErrBadPrice is returned when a price is non-finite, non-positive, or
	// scales outside the uint64 tick range.
	ErrBadPrice = errors.New("price: non-finite, non-positive, or out of range")
	// ErrBadDigits is returned when an Encoder is constructed with a digit
	// count outside [MinDigits, MaxDigits].
	ErrBadDigits = errors.New("price: digits out of range [0, 18]")
)

var maxTick = new(big.Int).SetUint64(math.MaxUint64)

// Encoder maps prices to ticks at a fixed decimal resolution.
type Encoder struct {
	digits uint
	scale  decimal.Decimal // 10^digits, precomputed once
}

// NewEncoder builds an Encoder with the given number of significant decimal
// digits. digits must be in [0, 18].
func NewEncoder(digits uint) (Encoder, error) {
	if digits > MaxDigits {
		return Encoder{}, ErrBadDigits
	}
	return Encoder{
		digits: digits,
		scale:  decimal.New(1, int32(digits)),
	}, nil
}

// DefaultEncoder returns an Encoder at the spec's default resolution of 8
// decimal digits.
func DefaultEncoder() Encoder {
	enc, _ := NewEncoder(8)
	return enc
}

// Digits reports the encoder's configured decimal resolution.
func (e Encoder) Digits() uint {
	return e.digits
}

// Encode normalizes price to its tick. It rejects non-finite prices,
// prices <= 0, and prices whose scaled value would overflow a uint64.
func (e Encoder) Encode(price float64) (Tick, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrBadPrice
	}

	// NewFromFloat takes the shortest exact decimal representation of the
	// float64, so the scale-and-round below never reintroduces the binary
	// drift a naive price*10^digits float multiplication would.
	scaled := decimal.NewFromFloat(price).Mul(e.scale).Round(0)
	if scaled.Sign() <= 0 {
		return 0, ErrBadPrice
	}

	// Round(0) always normalizes to exponent 0, so Coefficient is the exact
	// integer tick value.
	coeff := scaled.Coefficient()
	if coeff.Sign() < 0 || coeff.Cmp(maxTick) > 0 {
		return 0, ErrBadPrice
	}
	return Tick(coeff.Uint64()), nil
}

// Decode returns the price represented by tick, i.e. tick / 10^digits. It is
// the left inverse of Encode for prices exactly representable at this
// resolution.
func (e Encoder) Decode(tick Tick) float64 {
	bi := new(big.Int).SetUint64(uint64(tick))
	d := decimal.NewFromBigInt(bi, 0).Div(e.scale)
	f, _ := d.Float64()
	return f
}
