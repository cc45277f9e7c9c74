// Package kernel defines the numeric capability contracts that quantities
// are built on, together with the concrete scalar kernels that satisfy them.
//
// A kernel is the raw arithmetic a measurement's magnitude is stored and
// computed in. The contracts are split by capability:
//
//   - Group: additive operations (Add, Sub, Neg)
//   - Field: multiplicative operations (Mul, Div)
//   - Number: Group + Field plus construction from a float64 literal
//
// Three kernels ship with the package:
//
//   - Float64: IEEE 754 double precision, the default choice
//   - Float32: single precision, for memory-bound bulk data
//   - Fixed64: decimal fixed point with nine fractional digits
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any other package in this module
package kernel
