package units

import (
	"fmt"

	"github.com/custodia-labs/dimensional/kernel"
)

// TemperatureUnit identifies one unit in the temperature dimension.
//
// Only absolute scales are representable: Celsius and Fahrenheit have
// offset zero points and cannot satisfy the linear conversion contract.
type TemperatureUnit int

const (
	// Kelvin is the SI unit of thermodynamic temperature and the
	// dimension's base unit.
	Kelvin TemperatureUnit = iota
	// Rankine is the absolute Fahrenheit-degree scale.
	Rankine
)

// Conversion factors into kelvins.
const rankineInKelvins = 5.0 / 9.0

// Symbol returns the conventional symbol for the unit.
func (u TemperatureUnit) Symbol() string {
	if u == Rankine {
		return "°R"
	}
	return "K"
}

// Temperature is an absolute temperature tagged with the unit it was
// measured in. The zero value is zero kelvins.
type Temperature[N kernel.Number[N]] struct {
	unit      TemperatureUnit
	magnitude N
}

// Kelvins builds a Kelvin-tagged temperature.
func Kelvins[N kernel.Number[N]](v N) Temperature[N] {
	return Temperature[N]{unit: Kelvin, magnitude: v}
}

// Rankines builds a Rankine-tagged temperature.
func Rankines[N kernel.Number[N]](v N) Temperature[N] {
	return Temperature[N]{unit: Rankine, magnitude: v}
}

// NewTemperature builds a temperature from a runtime unit tag.
func NewTemperature[N kernel.Number[N]](u TemperatureUnit, v N) Temperature[N] {
	return Temperature[N]{unit: u, magnitude: v}
}

// ToBase returns the magnitude in kelvins.
func (t Temperature[N]) ToBase() N {
	if t.unit == Kelvin {
		return t.magnitude
	}
	return t.magnitude.Mul(t.scale(t.unit))
}

// FromBase wraps a kelvin magnitude as a Kelvin-tagged temperature.
func (Temperature[N]) FromBase(v N) Temperature[N] {
	return Temperature[N]{unit: Kelvin, magnitude: v}
}

// In converts the measurement to the given unit.
func (t Temperature[N]) In(u TemperatureUnit) Temperature[N] {
	base := t.ToBase()
	if u == Kelvin {
		return Temperature[N]{unit: Kelvin, magnitude: base}
	}
	return Temperature[N]{unit: u, magnitude: base.Div(t.scale(u))}
}

// Unit reports which unit tags the measurement.
func (t Temperature[N]) Unit() TemperatureUnit {
	return t.unit
}

// Magnitude returns the magnitude in the tagged unit.
func (t Temperature[N]) Magnitude() N {
	return t.magnitude
}

// String implements fmt.Stringer.
func (t Temperature[N]) String() string {
	return fmt.Sprintf("%v %s", t.magnitude, t.unit.Symbol())
}

// scale materialises u's conversion factor in the kernel type.
func (t Temperature[N]) scale(u TemperatureUnit) N {
	if u == Rankine {
		return t.magnitude.FromFloat(rankineInKelvins)
	}
	return t.magnitude.FromFloat(1)
}
