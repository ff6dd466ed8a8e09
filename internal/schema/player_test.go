package schema_test

import (
	"testing"

	"github.com/emushim/controlview/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestPlayerNumber(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"P1 Up", 1},
		{"P2 Button A", 2},
		{"P10 Start", 10},
		{"Reset", 0},
		{"Power", 0},
		{"P1Up", 0},     // missing the trailing space
		{"P 1 Up", 0},   // digits must follow P immediately
		{"XP1 Start", 0}, // anchored at the start
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.PlayerNumber(tt.name))
		})
	}
}

func TestPlayerCount_Prefixed(t *testing.T) {
	d := schema.NewDefinition("Two Pads")
	d.AddButton("P1 A")
	d.AddButton("P2 A")
	d.AddButton("Reset")
	assert.Equal(t, 2, d.PlayerCount())
}

func TestPlayerCount_UpFallback(t *testing.T) {
	d := schema.NewDefinition("Handheld")
	d.AddButton("Up")
	d.AddButton("Down")
	d.AddButton("A")
	assert.Equal(t, 1, d.PlayerCount())
}

func TestPlayerCount_NoControls(t *testing.T) {
	d := schema.NewDefinition("Empty")
	assert.Equal(t, 0, d.PlayerCount())
	assert.False(t, d.HasControls())
}

func TestPlayerCount_NoPrefixNoFallback(t *testing.T) {
	d := schema.NewDefinition("Panel")
	d.AddButton("Reset")
	d.AddButton("Power")
	assert.Equal(t, 0, d.PlayerCount())
}

func TestControlsOrdered_Groups(t *testing.T) {
	d := schema.NewDefinition("Two Pads")
	d.AddButton("Reset")
	d.AddButton("P1 A")
	d.AddButton("P1 B")
	d.AddButton("P2 A")
	d.AddAxis("P1 Stick X", schema.MustFloatRange(-128, 0, 127))
	d.AddAxis("P1 Stick Y", schema.MustFloatRange(-128, 0, 127))

	groups := d.ControlsOrdered()

	assert.Len(t, groups, 3) // player count 2, plus system group
	assert.Equal(t, []string{"Reset"}, groups[0])
	// Analog controls lead, then buttons, each in declaration order.
	assert.Equal(t, []string{"P1 Stick X", "P1 Stick Y", "P1 A", "P1 B"}, groups[1])
	assert.Equal(t, []string{"P2 A"}, groups[2])
}

func TestControlsOrdered_Partition(t *testing.T) {
	d := schema.NewDefinition("Two Pads")
	d.AddButton("Reset")
	d.AddButton("P1 A")
	d.AddButton("P2 A")
	d.AddAxis("P2 Stick X", schema.MustFloatRange(-1, 0, 1))

	groups := d.ControlsOrdered()

	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	assert.ElementsMatch(t, []string{"Reset", "P1 A", "P2 A", "P2 Stick X"}, all)
}

func TestControlsOrdered_UpFallbackGroupCount(t *testing.T) {
	d := schema.NewDefinition("Handheld")
	d.AddButton("Up")
	d.AddButton("A")

	groups := d.ControlsOrdered()

	// Fallback reports one player, so there are two groups; the
	// unprefixed controls still sit in the system group.
	assert.Len(t, groups, 2)
	assert.Equal(t, []string{"Up", "A"}, groups[0])
	assert.Empty(t, groups[1])
}
