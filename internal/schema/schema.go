// Package schema describes the logical control surface of an emulated
// machine: which digital buttons and analog axes it exposes, how analog
// values are bounded, and how controls group by owning player.
//
// A Definition is populated once while a machine layout is being built
// and is read-mostly afterwards. It is not internally synchronized;
// concurrent mutation requires external locking by the caller.
package schema

// Definition is the declarative control surface of one emulated machine.
type Definition struct {
	name            string
	boolButtons     []string
	floatControls   []string
	floatRanges     []FloatRange
	axisConstraints []AxisConstraint
	categoryLabels  map[string]string
}

// NewDefinition creates an empty definition with the given layout name.
func NewDefinition(name string) *Definition {
	return &Definition{
		name:           name,
		categoryLabels: make(map[string]string),
	}
}

// Clone returns a new definition holding copies of d's control sequences.
// The backing arrays are never shared, so appending to either definition
// afterwards cannot disturb the other. The category label map is shared
// with the source; labels are presentation-only data.
func (d *Definition) Clone() *Definition {
	c := &Definition{
		name:           d.name,
		categoryLabels: d.categoryLabels,
	}
	c.boolButtons = append(c.boolButtons, d.boolButtons...)
	c.floatControls = append(c.floatControls, d.floatControls...)
	c.floatRanges = append(c.floatRanges, d.floatRanges...)
	c.axisConstraints = append(c.axisConstraints, d.axisConstraints...)
	return c
}

// Name returns the layout name.
func (d *Definition) Name() string { return d.name }

// AddButton appends a digital (on/off) control.
func (d *Definition) AddButton(name string) {
	d.boolButtons = append(d.boolButtons, name)
}

// AddAxis appends an analog control together with its value range. The
// button and axis sequences keep declaration order; axes and ranges stay
// index-aligned.
func (d *Definition) AddAxis(name string, r FloatRange) {
	d.floatControls = append(d.floatControls, name)
	d.floatRanges = append(d.floatRanges, r)
}

// AddAxisConstraint appends a constraint applied by ApplyAxisConstraints.
func (d *Definition) AddAxisConstraint(c AxisConstraint) {
	d.axisConstraints = append(d.axisConstraints, c)
}

// SetCategoryLabel records a display category for a control.
func (d *Definition) SetCategoryLabel(control, label string) {
	d.categoryLabels[control] = label
}

// BoolButtons returns the digital controls in declaration order. The
// returned slice is owned by the definition and must not be modified.
func (d *Definition) BoolButtons() []string { return d.boolButtons }

// FloatControls returns the analog controls in declaration order. The
// returned slice is owned by the definition and must not be modified.
func (d *Definition) FloatControls() []string { return d.floatControls }

// FloatRanges returns the per-axis ranges, index-aligned with
// FloatControls. The returned slice is owned by the definition and must
// not be modified.
func (d *Definition) FloatRanges() []FloatRange { return d.floatRanges }

// RangeFor returns the range of the named analog control.
func (d *Definition) RangeFor(control string) (FloatRange, bool) {
	for i, name := range d.floatControls {
		if name == control {
			return d.floatRanges[i], true
		}
	}
	return FloatRange{}, false
}

// CategoryLabels returns the control-to-category map used by
// presentation layers. No internal logic depends on its contents.
func (d *Definition) CategoryLabels() map[string]string { return d.categoryLabels }

// HasControls reports whether at least one button or axis is defined.
func (d *Definition) HasControls() bool {
	return len(d.boolButtons) > 0 || len(d.floatControls) > 0
}
