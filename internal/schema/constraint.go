package schema

import "math"

// AxisConstraint is a declarative clamp applied to freshly sampled
// analog values. Constraints carry a class name so callers can choose
// which subset applies on a given pass (raw sampling vs. UI preview,
// for instance).
type AxisConstraint interface {
	ConstraintClass() string
}

// CircularAxisConstraint keeps a pair of axes inside a circle of the
// given radius. Physical sticks rarely reach the corners of their square
// sampling range; this reproduces that limit in software.
type CircularAxisConstraint struct {
	Class  string
	XAxis  string
	YAxis  string
	Radius float64
}

// ConstraintClass returns the class the constraint is scoped to.
func (c CircularAxisConstraint) ConstraintClass() string { return c.Class }

// ApplyAxisConstraints rewrites values in place so that every constraint
// in the given class holds. Constraints run in declaration order, each
// seeing the previous one's results. A constraint whose axes are not all
// present in values is skipped; partial sampling is a normal runtime
// condition, not an error. Keys are never added or removed.
func (d *Definition) ApplyAxisConstraints(class string, values map[string]float64) {
	for _, ac := range d.axisConstraints {
		if ac.ConstraintClass() != class {
			continue
		}
		switch c := ac.(type) {
		case CircularAxisConstraint:
			x, okX := values[c.XAxis]
			y, okY := values[c.YAxis]
			if !okX || !okY {
				continue
			}
			length := math.Sqrt(x*x + y*y)
			if length > c.Radius {
				scale := c.Radius / length
				x *= scale
				y *= scale
			}
			values[c.XAxis] = x
			values[c.YAxis] = y
		}
	}
}
