package quantity

import (
	"github.com/custodia-labs/dimensional/kernel"
)

// Quantity is the contract a dimension type satisfies to take part in the
// measurement algebra. Q is the dimension type itself, N its kernel.
//
// Both methods must be pure and total. ToBase maps the tagged magnitude to
// the dimension's base unit with the tag's fixed conversion factor.
// FromBase always reconstructs the base-unit variant, so every operator
// result is tagged with the base unit even when no operand was; this
// collapse is deliberate and relied on throughout (see the units package).
type Quantity[Q any, N kernel.Number[N]] interface {
	// ToBase returns the magnitude expressed in the dimension's base unit.
	ToBase() N
	// FromBase wraps a base-unit magnitude as the base-unit variant of Q.
	FromBase(v N) Q
}

// Add returns a + b, tagged with the dimension's base unit.
func Add[Q Quantity[Q, N], N kernel.Number[N]](a, b Q) Q {
	return a.FromBase(a.ToBase().Add(b.ToBase()))
}

// Sub returns a - b, tagged with the dimension's base unit.
func Sub[Q Quantity[Q, N], N kernel.Number[N]](a, b Q) Q {
	return a.FromBase(a.ToBase().Sub(b.ToBase()))
}

// Neg returns q with its sign flipped, tagged with the base unit.
func Neg[Q Quantity[Q, N], N kernel.Number[N]](q Q) Q {
	return q.FromBase(q.ToBase().Neg())
}

// Mul scales q by f, tagged with the base unit.
func Mul[Q Quantity[Q, N], N kernel.Number[N]](f Factor[N], q Q) Q {
	return q.FromBase(f.value.Mul(q.ToBase()))
}

// Div divides q by f, tagged with the base unit. A zero factor is not
// guarded; the result is whatever the kernel's division does.
func Div[Q Quantity[Q, N], N kernel.Number[N]](q Q, f Factor[N]) Q {
	return q.FromBase(q.ToBase().Div(f.value))
}

// Sum folds any number of quantities into their base-unit total.
// An empty argument list yields the dimension's zero value.
func Sum[Q Quantity[Q, N], N kernel.Number[N]](qs ...Q) Q {
	var zero Q
	var total N
	for _, q := range qs {
		total = total.Add(q.ToBase())
	}
	return zero.FromBase(total)
}
