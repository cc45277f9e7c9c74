package units

import (
	"fmt"

	"github.com/custodia-labs/dimensional/kernel"
)

// ForceUnit identifies one unit in the force dimension.
type ForceUnit int

const (
	// Newton is the SI unit of force and the dimension's base unit.
	Newton ForceUnit = iota
	// PoundForce is the avoirdupois pound-force.
	PoundForce
	// Kilopound (kip) is one thousand pounds-force.
	Kilopound
)

// Conversion factors into newtons.
const (
	poundForceInNewtons = 4.4482216152605
	kilopoundInNewtons  = 4448.221615255
)

// Symbol returns the conventional symbol for the unit.
func (u ForceUnit) Symbol() string {
	switch u {
	case PoundForce:
		return "lbf"
	case Kilopound:
		return "kip"
	default:
		return "N"
	}
}

// Force is a force measurement tagged with the unit it was measured in.
// The zero value is zero newtons.
type Force[N kernel.Number[N]] struct {
	unit      ForceUnit
	magnitude N
}

// Newtons builds a Newton-tagged force.
func Newtons[N kernel.Number[N]](v N) Force[N] {
	return Force[N]{unit: Newton, magnitude: v}
}

// PoundsForce builds a PoundForce-tagged force.
func PoundsForce[N kernel.Number[N]](v N) Force[N] {
	return Force[N]{unit: PoundForce, magnitude: v}
}

// Kilopounds builds a Kilopound-tagged force.
func Kilopounds[N kernel.Number[N]](v N) Force[N] {
	return Force[N]{unit: Kilopound, magnitude: v}
}

// NewForce builds a force from a runtime unit tag. Embedders that map
// user input to units go through this; typed call sites should prefer
// the per-unit constructors.
func NewForce[N kernel.Number[N]](u ForceUnit, v N) Force[N] {
	return Force[N]{unit: u, magnitude: v}
}

// ToBase returns the magnitude in newtons. Exact for Newton-tagged
// values; other tags multiply by their fixed factor.
func (f Force[N]) ToBase() N {
	if f.unit == Newton {
		return f.magnitude
	}
	return f.magnitude.Mul(f.scale(f.unit))
}

// FromBase wraps a newton magnitude as a Newton-tagged force. Every
// operator result goes through here, so arithmetic collapses unit tags
// to the base unit regardless of what the operands were tagged with.
func (Force[N]) FromBase(v N) Force[N] {
	return Force[N]{unit: Newton, magnitude: v}
}

// In converts the measurement to the given unit. The round trip through
// a non-base unit may accumulate kernel rounding error.
func (f Force[N]) In(u ForceUnit) Force[N] {
	base := f.ToBase()
	if u == Newton {
		return Force[N]{unit: Newton, magnitude: base}
	}
	return Force[N]{unit: u, magnitude: base.Div(f.scale(u))}
}

// Unit reports which unit tags the measurement.
func (f Force[N]) Unit() ForceUnit {
	return f.unit
}

// Magnitude returns the magnitude in the tagged unit.
func (f Force[N]) Magnitude() N {
	return f.magnitude
}

// String implements fmt.Stringer.
func (f Force[N]) String() string {
	return fmt.Sprintf("%v %s", f.magnitude, f.unit.Symbol())
}

// scale materialises u's conversion factor in the kernel type.
func (f Force[N]) scale(u ForceUnit) N {
	switch u {
	case PoundForce:
		return f.magnitude.FromFloat(poundForceInNewtons)
	case Kilopound:
		return f.magnitude.FromFloat(kilopoundInNewtons)
	default:
		return f.magnitude.FromFloat(1)
	}
}
