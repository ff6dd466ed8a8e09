package schema_test

import (
	"testing"

	"github.com/emushim/controlview/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasControls(t *testing.T) {
	d := schema.NewDefinition("pad")
	assert.False(t, d.HasControls())

	d.AddButton("P1 A")
	assert.True(t, d.HasControls())

	axes := schema.NewDefinition("stick")
	axes.AddAxis("Stick X", schema.MustFloatRange(-1, 0, 1))
	assert.True(t, axes.HasControls())
}

func TestAxesStayAlignedWithRanges(t *testing.T) {
	d := schema.NewDefinition("pad")
	d.AddAxis("Stick X", schema.MustFloatRange(-128, 0, 127))
	d.AddAxis("Trigger", schema.MustFloatRange(0, 0, 255))

	require.Len(t, d.FloatControls(), 2)
	require.Len(t, d.FloatRanges(), 2)

	r, ok := d.RangeFor("Trigger")
	require.True(t, ok)
	assert.Equal(t, float64(255), r.Max)

	_, ok = d.RangeFor("Absent")
	assert.False(t, ok)
}

func TestClone_AppendsWithoutAliasing(t *testing.T) {
	src := schema.NewDefinition("pad")
	src.AddButton("P1 A")
	src.AddAxis("P1 Stick X", schema.MustFloatRange(-128, 0, 127))
	src.AddAxisConstraint(schema.CircularAxisConstraint{
		Class: "Natural Circle", XAxis: "P1 Stick X", YAxis: "P1 Stick Y", Radius: 127,
	})
	src.SetCategoryLabel("P1 A", "Face Buttons")

	c := src.Clone()
	assert.Equal(t, "pad", c.Name())
	assert.Equal(t, src.BoolButtons(), c.BoolButtons())
	assert.Equal(t, src.FloatControls(), c.FloatControls())
	assert.Equal(t, src.FloatRanges(), c.FloatRanges())
	assert.Equal(t, "Face Buttons", c.CategoryLabels()["P1 A"])

	// Growing the clone must not leak into the source.
	c.AddButton("P1 B")
	c.AddAxis("P1 Stick Y", schema.MustFloatRange(-128, 0, 127))
	assert.Len(t, src.BoolButtons(), 1)
	assert.Len(t, src.FloatControls(), 1)
	assert.Len(t, src.FloatRanges(), 1)
}

func TestClone_EmptySource(t *testing.T) {
	c := schema.NewDefinition("empty").Clone()
	assert.False(t, c.HasControls())
	assert.Equal(t, 0, c.PlayerCount())
}
