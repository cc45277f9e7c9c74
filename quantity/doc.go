// Package quantity defines the generic contract a physical dimension type
// satisfies and implements the measurement algebra exactly once against it.
//
// A dimension type (see the units package) carries a magnitude in one of a
// closed set of units and knows how to map it to and from the dimension's
// base unit. Everything else — addition, subtraction, negation, scaling —
// lives here and is shared by every dimension:
//
//	a := units.Newtons(kernel.Float64(1))
//	b := units.Kilopounds(kernel.Float64(1))
//	sum := quantity.Add(a, b) // 4449.221615255 N
//
// Mixing dimensions does not compile: quantity.Add requires both operands
// to be the same conforming type, so a Force and a Temperature can never
// meet in an operator. There is no runtime dimension check anywhere.
//
// Scale factors are explicit values, not bare scalars. A Factor can
// multiply or divide a quantity but cannot be added to one; additive
// combination is only possible through the quantity contract.
//
// # Import Rules
//
//   - Can Import: Standard library, kernel
//   - Cannot Import: units, internal packages
package quantity
