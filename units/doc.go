// Package units defines the concrete physical dimensions: Force, Mass,
// Temperature and Duration. Each dimension is a closed set of unit tags
// over a chosen base unit, with fixed linear conversion factors into it.
//
// A value is built with a per-unit constructor and is immutable from then
// on. All arithmetic comes from the quantity package; nothing here needs
// to be written per dimension beyond the unit tags, the factors and the
// conversion switch:
//
//	f := units.Kilopounds(kernel.Float64(2))
//	f.ToBase()          // 8896.44323051 newtons
//	f.In(units.Newton)  // the same measurement, Newton-tagged
//
// Conversion into the base unit is exact up to kernel arithmetic; the
// inverse direction may accumulate rounding for non-base units.
//
// Adding a unit to a dimension takes a new tag constant, its factor into
// the base unit, a case in the dimension's conversion switch and a
// constructor. FromBase never grows a branch: it always reconstructs the
// base-unit variant.
//
// Only multiplicative units fit the contract. Affine units such as
// Celsius or Fahrenheit, whose zero points are offset from the base
// unit's, are excluded from the Temperature dimension by design.
//
// # Import Rules
//
//   - Can Import: Standard library, kernel
//   - Cannot Import: quantity (the dependency runs the other way), internal packages
package units
