package quantity

import (
	"github.com/custodia-labs/dimensional/kernel"
)

// Factor is a unitless multiplier tied to the kernel type of the
// quantities it scales. It exists so that call sites can write
// Mul(NewFactor[kernel.Float64](2.5), q) without the literal itself
// being a quantity — and so that adding a bare scalar to a quantity
// is unrepresentable rather than merely rejected at runtime.
type Factor[N kernel.Number[N]] struct {
	value N
}

// NewFactor builds a factor from a float64 literal. Construction never
// fails; the value is just a wrapped kernel scalar.
func NewFactor[N kernel.Number[N]](v float64) Factor[N] {
	var zero N
	return Factor[N]{value: zero.FromFloat(v)}
}

// FactorOf wraps an existing kernel value as a factor.
func FactorOf[N kernel.Number[N]](v N) Factor[N] {
	return Factor[N]{value: v}
}

// Value returns the wrapped kernel scalar.
func (f Factor[N]) Value() N {
	return f.value
}
