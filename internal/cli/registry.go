package cli

import (
	"fmt"

	"github.com/custodia-labs/dimensional/internal/logger"
	"github.com/custodia-labs/dimensional/kernel"
	"github.com/custodia-labs/dimensional/units"
)

// unitSpec names one unit of a dimension for flag lookup and table output.
type unitSpec struct {
	// Name is the canonical value accepted by --from/--to.
	Name string
	// Symbol is the conventional symbol shown in output.
	Symbol string
}

// dimSpec describes one dimension the CLI exposes. The unit set is
// closed; the first entry is always the base unit.
type dimSpec struct {
	Name  string
	Units []unitSpec
	// Convert maps value from one named unit to another.
	Convert func(value float64, from, to string) (float64, error)
	// Symbol resolves a unit name (or alias) to its symbol.
	Symbol func(name string) (string, error)
}

// Unit name lookup per dimension. Symbols double as aliases.
var (
	forceTags = map[string]units.ForceUnit{
		"newton":     units.Newton,
		"n":          units.Newton,
		"poundforce": units.PoundForce,
		"lbf":        units.PoundForce,
		"kilopound":  units.Kilopound,
		"kip":        units.Kilopound,
	}

	massTags = map[string]units.MassUnit{
		"kilogram": units.Kilogram,
		"kg":       units.Kilogram,
		"gram":     units.Gram,
		"g":        units.Gram,
		"pound":    units.Pound,
		"lb":       units.Pound,
		"tonne":    units.Tonne,
		"t":        units.Tonne,
	}

	temperatureTags = map[string]units.TemperatureUnit{
		"kelvin":  units.Kelvin,
		"k":       units.Kelvin,
		"rankine": units.Rankine,
		"r":       units.Rankine,
	}

	durationTags = map[string]units.DurationUnit{
		"second":      units.Second,
		"s":           units.Second,
		"millisecond": units.Millisecond,
		"ms":          units.Millisecond,
		"minute":      units.Minute,
		"min":         units.Minute,
		"hour":        units.Hour,
		"h":           units.Hour,
	}
)

// dimensions is the closed set the CLI exposes, in display order.
var dimensions = []dimSpec{
	{
		Name: "force",
		Units: []unitSpec{
			{Name: "newton", Symbol: units.Newton.Symbol()},
			{Name: "poundforce", Symbol: units.PoundForce.Symbol()},
			{Name: "kilopound", Symbol: units.Kilopound.Symbol()},
		},
		Convert: convertForce,
		Symbol:  forceSymbol,
	},
	{
		Name: "mass",
		Units: []unitSpec{
			{Name: "kilogram", Symbol: units.Kilogram.Symbol()},
			{Name: "gram", Symbol: units.Gram.Symbol()},
			{Name: "pound", Symbol: units.Pound.Symbol()},
			{Name: "tonne", Symbol: units.Tonne.Symbol()},
		},
		Convert: convertMass,
		Symbol:  massSymbol,
	},
	{
		Name: "temperature",
		Units: []unitSpec{
			{Name: "kelvin", Symbol: units.Kelvin.Symbol()},
			{Name: "rankine", Symbol: units.Rankine.Symbol()},
		},
		Convert: convertTemperature,
		Symbol:  temperatureSymbol,
	},
	{
		Name: "duration",
		Units: []unitSpec{
			{Name: "second", Symbol: units.Second.Symbol()},
			{Name: "millisecond", Symbol: units.Millisecond.Symbol()},
			{Name: "minute", Symbol: units.Minute.Symbol()},
			{Name: "hour", Symbol: units.Hour.Symbol()},
		},
		Convert: convertDuration,
		Symbol:  durationSymbol,
	},
}

// lookupDimension finds a dimension by name.
func lookupDimension(name string) (dimSpec, error) {
	for _, d := range dimensions {
		if d.Name == name {
			return d, nil
		}
	}
	return dimSpec{}, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// measured is the slice of a dimension type's behaviour the CLI needs:
// conversion into a named unit plus magnitude access.
type measured[U comparable, Q any] interface {
	In(u U) Q
	Magnitude() kernel.Float64
	ToBase() kernel.Float64
}

// convertVia routes value through the dimension's base unit using the
// library's typed constructors. Magnitude extraction happens after the
// In conversion, so non-base targets carry the documented rounding.
func convertVia[U comparable, Q measured[U, Q]](
	tags map[string]U,
	build func(U, kernel.Float64) Q,
	value float64,
	from, to string,
) (float64, error) {
	fu, ok := tags[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	tu, ok := tags[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}

	q := build(fu, kernel.Float64(value))
	logger.Debug("%g %q = %g base units", value, from, float64(q.ToBase()))
	return float64(q.In(tu).Magnitude()), nil
}

// symbolVia resolves a unit name through the dimension's tag map.
func symbolVia[U interface{ Symbol() string }](tags map[string]U, name string) (string, error) {
	u, ok := tags[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u.Symbol(), nil
}

func convertForce(value float64, from, to string) (float64, error) {
	return convertVia(forceTags, units.NewForce[kernel.Float64], value, from, to)
}

func convertMass(value float64, from, to string) (float64, error) {
	return convertVia(massTags, units.NewMass[kernel.Float64], value, from, to)
}

func convertTemperature(value float64, from, to string) (float64, error) {
	return convertVia(temperatureTags, units.NewTemperature[kernel.Float64], value, from, to)
}

func convertDuration(value float64, from, to string) (float64, error) {
	return convertVia(durationTags, units.NewDuration[kernel.Float64], value, from, to)
}

func forceSymbol(name string) (string, error) {
	return symbolVia(forceTags, name)
}

func massSymbol(name string) (string, error) {
	return symbolVia(massTags, name)
}

func temperatureSymbol(name string) (string, error) {
	return symbolVia(temperatureTags, name)
}

func durationSymbol(name string) (string, error) {
	return symbolVia(durationTags, name)
}
