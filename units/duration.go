package units

import (
	"fmt"

	"github.com/custodia-labs/dimensional/kernel"
)

// DurationUnit identifies one unit in the time dimension.
type DurationUnit int

const (
	// Second is the SI unit of time and the dimension's base unit.
	Second DurationUnit = iota
	// Millisecond is one thousandth of a second.
	Millisecond
	// Minute is sixty seconds.
	Minute
	// Hour is sixty minutes.
	Hour
)

// Conversion factors into seconds.
const (
	millisecondInSeconds = 0.001
	minuteInSeconds      = 60.0
	hourInSeconds        = 3600.0
)

// Symbol returns the conventional symbol for the unit.
func (u DurationUnit) Symbol() string {
	switch u {
	case Millisecond:
		return "ms"
	case Minute:
		return "min"
	case Hour:
		return "h"
	default:
		return "s"
	}
}

// Duration is a time measurement tagged with the unit it was measured
// in. Unlike time.Duration it carries a generic kernel magnitude, so it
// takes part in the same algebra as every other dimension. The zero
// value is zero seconds.
type Duration[N kernel.Number[N]] struct {
	unit      DurationUnit
	magnitude N
}

// Seconds builds a Second-tagged duration.
func Seconds[N kernel.Number[N]](v N) Duration[N] {
	return Duration[N]{unit: Second, magnitude: v}
}

// Milliseconds builds a Millisecond-tagged duration.
func Milliseconds[N kernel.Number[N]](v N) Duration[N] {
	return Duration[N]{unit: Millisecond, magnitude: v}
}

// Minutes builds a Minute-tagged duration.
func Minutes[N kernel.Number[N]](v N) Duration[N] {
	return Duration[N]{unit: Minute, magnitude: v}
}

// Hours builds an Hour-tagged duration.
func Hours[N kernel.Number[N]](v N) Duration[N] {
	return Duration[N]{unit: Hour, magnitude: v}
}

// NewDuration builds a duration from a runtime unit tag.
func NewDuration[N kernel.Number[N]](u DurationUnit, v N) Duration[N] {
	return Duration[N]{unit: u, magnitude: v}
}

// ToBase returns the magnitude in seconds.
func (d Duration[N]) ToBase() N {
	if d.unit == Second {
		return d.magnitude
	}
	return d.magnitude.Mul(d.scale(d.unit))
}

// FromBase wraps a second magnitude as a Second-tagged duration.
func (Duration[N]) FromBase(v N) Duration[N] {
	return Duration[N]{unit: Second, magnitude: v}
}

// In converts the measurement to the given unit.
func (d Duration[N]) In(u DurationUnit) Duration[N] {
	base := d.ToBase()
	if u == Second {
		return Duration[N]{unit: Second, magnitude: base}
	}
	return Duration[N]{unit: u, magnitude: base.Div(d.scale(u))}
}

// Unit reports which unit tags the measurement.
func (d Duration[N]) Unit() DurationUnit {
	return d.unit
}

// Magnitude returns the magnitude in the tagged unit.
func (d Duration[N]) Magnitude() N {
	return d.magnitude
}

// String implements fmt.Stringer.
func (d Duration[N]) String() string {
	return fmt.Sprintf("%v %s", d.magnitude, d.unit.Symbol())
}

// scale materialises u's conversion factor in the kernel type.
func (d Duration[N]) scale(u DurationUnit) N {
	switch u {
	case Millisecond:
		return d.magnitude.FromFloat(millisecondInSeconds)
	case Minute:
		return d.magnitude.FromFloat(minuteInSeconds)
	case Hour:
		return d.magnitude.FromFloat(hourInSeconds)
	default:
		return d.magnitude.FromFloat(1)
	}
}
