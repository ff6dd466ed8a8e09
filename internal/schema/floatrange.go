package schema

import (
	"fmt"
	"math"
	"strconv"
)

// FloatRange bounds an analog control: minimum, neutral and maximum
// value. Mid is the resting position the control returns to.
type FloatRange struct {
	Min float64 `json:"min"`
	Mid float64 `json:"mid"`
	Max float64 `json:"max"`
}

// NewFloatRange builds a range from exactly three values, positionally
// (min, mid, max). Any other count is a programming error in the calling
// machine definition and fails immediately.
func NewFloatRange(vals ...float64) (FloatRange, error) {
	if len(vals) != 3 {
		return FloatRange{}, fmt.Errorf("schema: float range needs exactly 3 values (min, mid, max), got %d", len(vals))
	}
	return FloatRange{Min: vals[0], Mid: vals[1], Max: vals[2]}, nil
}

// MustFloatRange is NewFloatRange for compile-time-known literals; it
// panics on a wrong value count.
func MustFloatRange(vals ...float64) FloatRange {
	r, err := NewFloatRange(vals...)
	if err != nil {
		panic(err)
	}
	return r
}

// MaxDigits reports the decimal width of the widest integer magnitude in
// the range, sign ignored. Used for fixed-width value display.
func (r FloatRange) MaxDigits() int {
	widest := math.Max(math.Abs(r.Min), math.Abs(r.Max))
	return len(strconv.Itoa(int(widest)))
}
