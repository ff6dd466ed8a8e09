// Package device holds the built-in emulated-machine layouts. Each
// layout populates a schema definition with the machine's real control
// surface; the registry resolves a layout by name with a generic pad as
// the fallback.
package device

import (
	"sort"

	"github.com/emushim/controlview/internal/schema"
)

// Layout couples a machine's control schema with the presentation
// extras a machine may override.
type Layout struct {
	Definition *schema.Definition
	// GroupOverride replaces the default per-player grouping when set.
	// It must stay contract-equivalent: PlayerCount()+1 groups covering
	// every control exactly once.
	GroupOverride [][]string
}

// Groups returns the display grouping, honoring an override.
func (l *Layout) Groups() [][]string {
	if l.GroupOverride != nil {
		return l.GroupOverride
	}
	return l.Definition.ControlsOrdered()
}

var builtin = map[string]func() *Layout{
	"gameboy":     gameboyLayout,
	"nes":         nesLayout,
	"dual-analog": dualAnalogLayout,
}

// Names returns the registered layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a fresh layout by name. Falls back to the generic
// dual-analog pad if the name is unknown.
func Lookup(name string) (*Layout, bool) {
	build, ok := builtin[name]
	if !ok {
		return dualAnalogLayout(), false
	}
	return build(), true
}
