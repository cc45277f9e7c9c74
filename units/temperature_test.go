package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/dimensional/kernel"
	"github.com/custodia-labs/dimensional/units"
)

// TestTemperature_RankineToBase tests the 5/9 Rankine factor.
func TestTemperature_RankineToBase(t *testing.T) {
	r := units.Rankines(kernel.Float64(9))
	assert.InDelta(t, 5, float64(r.ToBase()), 1e-12)
}

// TestTemperature_KelvinIsIdentity tests the base-unit identity.
func TestTemperature_KelvinIsIdentity(t *testing.T) {
	k := units.Kelvins(kernel.Float64(293.15))
	assert.Equal(t, kernel.Float64(293.15), k.ToBase())
}

// TestTemperature_FromBaseCollapses tests the base-unit collapse policy.
func TestTemperature_FromBaseCollapses(t *testing.T) {
	x := units.Rankines(kernel.Float64(491.67))
	got := x.FromBase(x.ToBase())

	assert.Equal(t, units.Kelvin, got.Unit())
	assert.Equal(t, x.ToBase(), got.Magnitude())
}

// TestTemperature_InRankine tests conversion out of the base unit.
func TestTemperature_InRankine(t *testing.T) {
	r := units.Kelvins(kernel.Float64(5)).In(units.Rankine)

	assert.Equal(t, units.Rankine, r.Unit())
	assert.InDelta(t, 9, float64(r.Magnitude()), 1e-12)
}

// TestTemperature_String tests the display form.
func TestTemperature_String(t *testing.T) {
	assert.Equal(t, "300 K", units.Kelvins(kernel.Float64(300)).String())
	assert.Equal(t, "540 °R", units.Rankines(kernel.Float64(540)).String())
}
