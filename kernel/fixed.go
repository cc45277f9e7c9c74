package kernel

import (
	"math"
	"math/bits"
)

// fixedScale is the denominator of the Fixed64 representation: one whole
// unit is 1e9, giving nine exact decimal fraction digits.
const fixedScale = 1_000_000_000

// Fixed64 is a decimal fixed-point kernel backed by an int64 counting
// billionths. It represents magnitudes up to about ±9.2 billion with nine
// exact decimal digits after the point, which is enough to hold every
// conversion factor in the units package without rounding.
//
// Mul and Div route through a 128-bit intermediate, so no precision is
// lost to the intermediate product. Division by zero panics, the inherent
// behaviour of the integer representation. Quotients are truncated
// toward zero.
type Fixed64 int64

// Add returns a + b.
func (a Fixed64) Add(b Fixed64) Fixed64 { return a + b }

// Sub returns a - b.
func (a Fixed64) Sub(b Fixed64) Fixed64 { return a - b }

// Neg returns -a.
func (a Fixed64) Neg() Fixed64 { return -a }

// Mul returns a * b.
func (a Fixed64) Mul(b Fixed64) Fixed64 {
	return Fixed64(mulDiv(int64(a), int64(b), fixedScale))
}

// Div returns a / b. A zero divisor panics.
func (a Fixed64) Div(b Fixed64) Fixed64 {
	return Fixed64(mulDiv(int64(a), fixedScale, int64(b)))
}

// FromFloat converts a float64 literal into a Fixed64, rounding to the
// nearest billionth.
func (Fixed64) FromFloat(v float64) Fixed64 {
	return Fixed64(math.Round(v * fixedScale))
}

// Float returns the value as a float64. Values whose integer part needs
// more than the 52-bit float64 mantissa lose their lowest digits.
func (a Fixed64) Float() float64 {
	return float64(a) / fixedScale
}

// mulDiv computes a*b/c through a 128-bit intermediate product,
// truncating toward zero. It panics if c is zero or the quotient
// overflows, matching the behaviour of native integer division.
func mulDiv(a, b, c int64) int64 {
	neg := false
	ua := magnitude(a, &neg)
	ub := magnitude(b, &neg)
	uc := magnitude(c, &neg)

	hi, lo := bits.Mul64(ua, ub)
	q, _ := bits.Div64(hi, lo, uc)
	if neg {
		return -int64(q)
	}
	return int64(q)
}

// magnitude returns |v| as a uint64 and flips neg when v is negative.
// uint64(-v) is correct even for math.MinInt64.
func magnitude(v int64, neg *bool) uint64 {
	if v < 0 {
		*neg = !*neg
		return uint64(-v)
	}
	return uint64(v)
}
