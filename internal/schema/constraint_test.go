package schema_test

import (
	"math"
	"testing"

	"github.com/emushim/controlview/internal/schema"
	"github.com/stretchr/testify/assert"
)

func stickDefinition(radius float64) *schema.Definition {
	d := schema.NewDefinition("Stick")
	d.AddAxis("Stick X", schema.MustFloatRange(-128, 0, 127))
	d.AddAxis("Stick Y", schema.MustFloatRange(-128, 0, 127))
	d.AddAxisConstraint(schema.CircularAxisConstraint{
		Class:  "Natural Circle",
		XAxis:  "Stick X",
		YAxis:  "Stick Y",
		Radius: radius,
	})
	return d
}

func TestApplyAxisConstraints_InsideCircle(t *testing.T) {
	d := stickDefinition(10)
	values := map[string]float64{"Stick X": 3, "Stick Y": 4}

	d.ApplyAxisConstraints("Natural Circle", values)

	assert.Equal(t, float64(3), values["Stick X"])
	assert.Equal(t, float64(4), values["Stick Y"])
}

func TestApplyAxisConstraints_OutsideCircle(t *testing.T) {
	d := stickDefinition(2.5)
	values := map[string]float64{"Stick X": 3, "Stick Y": 4}

	d.ApplyAxisConstraints("Natural Circle", values)

	assert.InDelta(t, 1.5, values["Stick X"], 1e-9)
	assert.InDelta(t, 2.0, values["Stick Y"], 1e-9)

	x, y := values["Stick X"], values["Stick Y"]
	assert.InDelta(t, 2.5, math.Sqrt(x*x+y*y), 1e-9)
}

func TestApplyAxisConstraints_MissingAxisSkipped(t *testing.T) {
	d := stickDefinition(2.5)
	values := map[string]float64{"Stick X": 3}

	d.ApplyAxisConstraints("Natural Circle", values)

	assert.Equal(t, map[string]float64{"Stick X": 3}, values)
}

func TestApplyAxisConstraints_ClassMismatch(t *testing.T) {
	d := stickDefinition(2.5)
	values := map[string]float64{"Stick X": 3, "Stick Y": 4}

	d.ApplyAxisConstraints("UI Preview", values)

	assert.Equal(t, float64(3), values["Stick X"])
	assert.Equal(t, float64(4), values["Stick Y"])
}

func TestApplyAxisConstraints_NeverAddsKeys(t *testing.T) {
	d := stickDefinition(2.5)
	values := map[string]float64{"Stick Y": 4, "Unrelated": 9}

	d.ApplyAxisConstraints("Natural Circle", values)

	assert.Len(t, values, 2)
	assert.Equal(t, float64(4), values["Stick Y"])
	assert.Equal(t, float64(9), values["Unrelated"])
}

func TestApplyAxisConstraints_SequentialSameClass(t *testing.T) {
	// Two overlapping constraints in the same class: the second sees the
	// first one's results, so the tighter radius wins.
	d := stickDefinition(10)
	d.AddAxisConstraint(schema.CircularAxisConstraint{
		Class:  "Natural Circle",
		XAxis:  "Stick X",
		YAxis:  "Stick Y",
		Radius: 2.5,
	})
	values := map[string]float64{"Stick X": 3, "Stick Y": 4}

	d.ApplyAxisConstraints("Natural Circle", values)

	x, y := values["Stick X"], values["Stick Y"]
	assert.InDelta(t, 2.5, math.Sqrt(x*x+y*y), 1e-9)
}

func TestApplyAxisConstraints_Idempotent(t *testing.T) {
	d := stickDefinition(10)
	values := map[string]float64{"Stick X": 3, "Stick Y": 4}

	d.ApplyAxisConstraints("Natural Circle", values)
	first := map[string]float64{"Stick X": values["Stick X"], "Stick Y": values["Stick Y"]}
	d.ApplyAxisConstraints("Natural Circle", values)

	assert.Equal(t, first, values)
}
