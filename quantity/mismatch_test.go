//go:build dimension_mismatch

// This file must not compile. It exists to demonstrate that mixing
// dimensions is rejected by the type checker, not caught at runtime:
//
//	go test -tags dimension_mismatch ./quantity
//
// fails to build because Add requires both operands to be the same
// conforming type, and a Force is not a Temperature.
package quantity_test

import (
	"github.com/custodia-labs/dimensional/kernel"
	"github.com/custodia-labs/dimensional/quantity"
	"github.com/custodia-labs/dimensional/units"
)

var rejected = quantity.Add(
	units.Newtons(kernel.Float64(1)),
	units.Kelvins(kernel.Float64(1)),
)
