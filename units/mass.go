package units

import (
	"fmt"

	"github.com/custodia-labs/dimensional/kernel"
)

// MassUnit identifies one unit in the mass dimension.
type MassUnit int

const (
	// Kilogram is the SI unit of mass and the dimension's base unit.
	Kilogram MassUnit = iota
	// Gram is one thousandth of a kilogram.
	Gram
	// Pound is the international avoirdupois pound.
	Pound
	// Tonne is the metric ton, one thousand kilograms.
	Tonne
)

// Conversion factors into kilograms.
const (
	gramInKilograms  = 0.001
	poundInKilograms = 0.45359237
	tonneInKilograms = 1000.0
)

// Symbol returns the conventional symbol for the unit.
func (u MassUnit) Symbol() string {
	switch u {
	case Gram:
		return "g"
	case Pound:
		return "lb"
	case Tonne:
		return "t"
	default:
		return "kg"
	}
}

// Mass is a mass measurement tagged with the unit it was measured in.
// The zero value is zero kilograms.
type Mass[N kernel.Number[N]] struct {
	unit      MassUnit
	magnitude N
}

// Kilograms builds a Kilogram-tagged mass.
func Kilograms[N kernel.Number[N]](v N) Mass[N] {
	return Mass[N]{unit: Kilogram, magnitude: v}
}

// Grams builds a Gram-tagged mass.
func Grams[N kernel.Number[N]](v N) Mass[N] {
	return Mass[N]{unit: Gram, magnitude: v}
}

// Pounds builds a Pound-tagged mass.
func Pounds[N kernel.Number[N]](v N) Mass[N] {
	return Mass[N]{unit: Pound, magnitude: v}
}

// Tonnes builds a Tonne-tagged mass.
func Tonnes[N kernel.Number[N]](v N) Mass[N] {
	return Mass[N]{unit: Tonne, magnitude: v}
}

// NewMass builds a mass from a runtime unit tag.
func NewMass[N kernel.Number[N]](u MassUnit, v N) Mass[N] {
	return Mass[N]{unit: u, magnitude: v}
}

// ToBase returns the magnitude in kilograms.
func (m Mass[N]) ToBase() N {
	if m.unit == Kilogram {
		return m.magnitude
	}
	return m.magnitude.Mul(m.scale(m.unit))
}

// FromBase wraps a kilogram magnitude as a Kilogram-tagged mass.
func (Mass[N]) FromBase(v N) Mass[N] {
	return Mass[N]{unit: Kilogram, magnitude: v}
}

// In converts the measurement to the given unit.
func (m Mass[N]) In(u MassUnit) Mass[N] {
	base := m.ToBase()
	if u == Kilogram {
		return Mass[N]{unit: Kilogram, magnitude: base}
	}
	return Mass[N]{unit: u, magnitude: base.Div(m.scale(u))}
}

// Unit reports which unit tags the measurement.
func (m Mass[N]) Unit() MassUnit {
	return m.unit
}

// Magnitude returns the magnitude in the tagged unit.
func (m Mass[N]) Magnitude() N {
	return m.magnitude
}

// String implements fmt.Stringer.
func (m Mass[N]) String() string {
	return fmt.Sprintf("%v %s", m.magnitude, m.unit.Symbol())
}

// scale materialises u's conversion factor in the kernel type.
func (m Mass[N]) scale(u MassUnit) N {
	switch u {
	case Gram:
		return m.magnitude.FromFloat(gramInKilograms)
	case Pound:
		return m.magnitude.FromFloat(poundInKilograms)
	case Tonne:
		return m.magnitude.FromFloat(tonneInKilograms)
	default:
		return m.magnitude.FromFloat(1)
	}
}
