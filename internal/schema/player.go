package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// Control names carry an optional owner prefix: "P<digits> " marks the
// owning player, anything else is a system control (player 0). The
// anchored digit-group-then-space form is a public contract consumed by
// config screens and machine definitions alike.
var playerPrefix = regexp.MustCompile(`^P(\d+) `)

// PlayerNumber parses the owning player from a control name. Names
// without a player prefix belong to player 0.
func PlayerNumber(controlName string) int {
	m := playerPrefix.FindStringSubmatch(controlName)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// PlayerCount returns the highest player number any control belongs to.
// Machines whose single implicit player carries no prefix (handhelds,
// mostly) are detected by an "Up"-prefixed control name and report one
// player.
func (d *Definition) PlayerCount() int {
	maxPlayer := 0
	for _, name := range d.boolButtons {
		if p := PlayerNumber(name); p > maxPlayer {
			maxPlayer = p
		}
	}
	for _, name := range d.floatControls {
		if p := PlayerNumber(name); p > maxPlayer {
			maxPlayer = p
		}
	}
	if maxPlayer > 0 {
		return maxPlayer
	}
	for _, name := range d.boolButtons {
		if strings.HasPrefix(name, "Up") {
			return 1
		}
	}
	for _, name := range d.floatControls {
		if strings.HasPrefix(name, "Up") {
			return 1
		}
	}
	return 0
}

// ControlsOrdered groups controls for display: group 0 holds system
// controls, group i (i >= 1) holds player i's. Within each group analog
// controls come first, then buttons, each in declaration order. Machine
// layouts may substitute their own contract-equivalent grouping.
func (d *Definition) ControlsOrdered() [][]string {
	groups := make([][]string, d.PlayerCount()+1)
	for _, name := range d.floatControls {
		p := PlayerNumber(name)
		groups[p] = append(groups[p], name)
	}
	for _, name := range d.boolButtons {
		p := PlayerNumber(name)
		groups[p] = append(groups[p], name)
	}
	return groups
}
