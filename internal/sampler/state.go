package sampler

import "math"

// State is one tick's sampled values for every control of a layout.
type State struct {
	Layout  string             `json:"layout"`
	Tick    int64              `json:"tick"`
	Buttons map[string]bool    `json:"buttons"`
	Floats  map[string]float64 `json:"floats"`
}

// Delta holds only the controls whose values changed since the previous
// tick.
type Delta struct {
	Buttons map[string]bool    `json:"buttons,omitempty"`
	Floats  map[string]float64 `json:"floats,omitempty"`
}

func (d *Delta) IsEmpty() bool {
	return len(d.Buttons) == 0 && len(d.Floats) == 0
}

// DefaultAnalogEpsilon is the change threshold below which an analog
// value counts as unchanged.
const DefaultAnalogEpsilon = 0.01

func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// ComputeDelta compares two states control by control. Analog values
// within epsilon of their previous value are treated as unchanged.
func ComputeDelta(old, new_ State, epsilon float64) *Delta {
	d := &Delta{}

	for name, pressed := range new_.Buttons {
		if old.Buttons[name] != pressed {
			if d.Buttons == nil {
				d.Buttons = make(map[string]bool)
			}
			d.Buttons[name] = pressed
		}
	}
	for name, value := range new_.Floats {
		if !floatEqual(old.Floats[name], value, epsilon) {
			if d.Floats == nil {
				d.Floats = make(map[string]float64)
			}
			d.Floats[name] = value
		}
	}

	return d
}

func copyState(s State) State {
	c := State{Layout: s.Layout, Tick: s.Tick}
	if s.Buttons != nil {
		c.Buttons = make(map[string]bool, len(s.Buttons))
		for name, pressed := range s.Buttons {
			c.Buttons[name] = pressed
		}
	}
	if s.Floats != nil {
		c.Floats = make(map[string]float64, len(s.Floats))
		for name, value := range s.Floats {
			c.Floats[name] = value
		}
	}
	return c
}
