package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFixed64_FromFloat tests rounding to the nearest billionth.
func TestFixed64_FromFloat(t *testing.T) {
	var z Fixed64

	assert.Equal(t, Fixed64(1_000_000_000), z.FromFloat(1))
	assert.Equal(t, Fixed64(1_500_000_000), z.FromFloat(1.5))
	assert.Equal(t, Fixed64(-2_000_000_000), z.FromFloat(-2))
	// The kilopound factor fits exactly in nine fraction digits.
	assert.Equal(t, Fixed64(4448_221_615_255), z.FromFloat(4448.221615255))
}

// TestFixed64_GroupOps tests the additive operations.
func TestFixed64_GroupOps(t *testing.T) {
	var z Fixed64
	a := z.FromFloat(2.5)
	b := z.FromFloat(1.25)

	assert.Equal(t, z.FromFloat(3.75), a.Add(b))
	assert.Equal(t, z.FromFloat(1.25), a.Sub(b))
	assert.Equal(t, z.FromFloat(-2.5), a.Neg())
}

// TestFixed64_Mul tests fixed-point multiplication through the 128-bit
// intermediate.
func TestFixed64_Mul(t *testing.T) {
	var z Fixed64

	assert.Equal(t, z.FromFloat(7.5), z.FromFloat(2.5).Mul(z.FromFloat(3)))
	assert.Equal(t, z.FromFloat(-7.5), z.FromFloat(-2.5).Mul(z.FromFloat(3)))
	assert.Equal(t, z.FromFloat(7.5), z.FromFloat(-2.5).Mul(z.FromFloat(-3)))

	// Large operands that would overflow a 64-bit intermediate.
	big := z.FromFloat(4448.221615255)
	assert.Equal(t, Fixed64(44482_216_152_550), big.Mul(z.FromFloat(10)))
}

// TestFixed64_Div tests fixed-point division.
func TestFixed64_Div(t *testing.T) {
	var z Fixed64

	assert.Equal(t, z.FromFloat(2.5), z.FromFloat(7.5).Div(z.FromFloat(3)))
	assert.Equal(t, z.FromFloat(-2.5), z.FromFloat(7.5).Div(z.FromFloat(-3)))

	// Truncation toward zero can shave a billionth off inexact quotients.
	tenth := z.FromFloat(4448.221615255).Div(z.FromFloat(444.8221615255))
	assert.InDelta(t, 10, tenth.Float(), 1e-8)
}

// TestFixed64_DivByZero tests that a zero divisor panics like native
// integer division.
func TestFixed64_DivByZero(t *testing.T) {
	var z Fixed64
	assert.Panics(t, func() {
		_ = z.FromFloat(1).Div(0)
	})
}

// TestFixed64_Float tests the float64 view.
func TestFixed64_Float(t *testing.T) {
	var z Fixed64
	assert.InDelta(t, 2.5, z.FromFloat(2.5).Float(), 1e-12)
	assert.InDelta(t, -0.000000001, Fixed64(-1).Float(), 1e-15)
}
