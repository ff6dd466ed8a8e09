package device

import (
	"fmt"

	"github.com/emushim/controlview/internal/schema"
)

// ConstraintClassNatural is the constraint class applied to raw
// per-tick samples. UI preview passes may define their own class later.
const ConstraintClassNatural = "Natural Circle"

// gameboyLayout is a single-player handheld whose buttons carry no
// player prefix.
func gameboyLayout() *Layout {
	d := schema.NewDefinition("Gameboy Controller")

	for _, name := range []string{"Up", "Down", "Left", "Right"} {
		d.AddButton(name)
		d.SetCategoryLabel(name, "D-Pad")
	}
	for _, name := range []string{"Select", "Start", "B", "A"} {
		d.AddButton(name)
		d.SetCategoryLabel(name, "Buttons")
	}
	d.AddButton("Power")
	d.SetCategoryLabel("Power", "Console")

	return &Layout{Definition: d}
}

// nesLayout has two prefixed pads plus console-level controls that
// belong to no player.
func nesLayout() *Layout {
	d := schema.NewDefinition("NES Controller")

	for player := 1; player <= 2; player++ {
		prefix := fmt.Sprintf("P%d ", player)
		for _, name := range []string{"Up", "Down", "Left", "Right"} {
			d.AddButton(prefix + name)
			d.SetCategoryLabel(prefix+name, "D-Pad")
		}
		for _, name := range []string{"Select", "Start", "B", "A"} {
			d.AddButton(prefix + name)
			d.SetCategoryLabel(prefix+name, "Buttons")
		}
	}
	d.AddButton("Reset")
	d.SetCategoryLabel("Reset", "Console")
	d.AddButton("Power")
	d.SetCategoryLabel("Power", "Console")

	return &Layout{Definition: d}
}

// dualAnalogLayout is a two-player pad with a constrained analog stick
// per player. The stick samples on a -128..127 square but the physical
// gate is circular, hence the constraint.
func dualAnalogLayout() *Layout {
	d := schema.NewDefinition("Dual Analog Controller")

	stickRange := schema.MustFloatRange(-128, 0, 127)
	for player := 1; player <= 2; player++ {
		prefix := fmt.Sprintf("P%d ", player)

		d.AddAxis(prefix+"Stick X", stickRange)
		d.SetCategoryLabel(prefix+"Stick X", "Analog Stick")
		d.AddAxis(prefix+"Stick Y", stickRange)
		d.SetCategoryLabel(prefix+"Stick Y", "Analog Stick")
		d.AddAxisConstraint(schema.CircularAxisConstraint{
			Class:  ConstraintClassNatural,
			XAxis:  prefix + "Stick X",
			YAxis:  prefix + "Stick Y",
			Radius: 127,
		})

		for _, name := range []string{"Up", "Down", "Left", "Right"} {
			d.AddButton(prefix + name)
			d.SetCategoryLabel(prefix+name, "D-Pad")
		}
		for _, name := range []string{"Select", "Start", "B", "A"} {
			d.AddButton(prefix + name)
			d.SetCategoryLabel(prefix+name, "Buttons")
		}
	}
	d.AddButton("Reset")
	d.SetCategoryLabel("Reset", "Console")

	return &Layout{Definition: d}
}
