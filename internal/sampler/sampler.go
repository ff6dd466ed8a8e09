// Package sampler produces a stream of control states for a machine
// layout. The source is a deterministic waveform generator rather than
// real hardware: sticks trace circles that overdrive the analog gate so
// the constraint clamp is always visible, and buttons cycle through
// press-and-hold. Every sample passes through the layout's axis
// constraints before it is published.
package sampler

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/emushim/controlview/internal/device"
)

const (
	// revolutionTicks is how many ticks one full stick circle takes.
	revolutionTicks = 120
	// holdTicks is how long each button in the cycle stays pressed.
	holdTicks = 30
	// overdrive pushes sticks past the gate radius so the circular
	// clamp has something to do.
	overdrive = 1.25
)

// Sampler emits state changes for one layout at a fixed tick rate.
type Sampler struct {
	layout   *device.Layout
	interval time.Duration
	epsilon  float64

	state     State
	prevState State
	tick      int64
	changes   chan State
	mu        sync.RWMutex
}

// New creates a sampler for the layout ticking at the given interval.
func New(layout *device.Layout, interval time.Duration, epsilon float64) *Sampler {
	return &Sampler{
		layout:   layout,
		interval: interval,
		epsilon:  epsilon,
		changes:  make(chan State, 64),
	}
}

// Changes returns the channel on which state changes are sent.
func (s *Sampler) Changes() <-chan State {
	return s.changes
}

// CurrentState returns a snapshot of the current state.
func (s *Sampler) CurrentState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// Run ticks the sampler until the context is cancelled.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step()
		}
	}
}

func (s *Sampler) step() {
	s.tick++
	state := s.stateAt(s.tick)

	s.mu.Lock()
	delta := ComputeDelta(s.prevState, state, s.epsilon)
	if delta.IsEmpty() {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.prevState = state
	s.mu.Unlock()

	s.emitState(state)
}

// stateAt builds the sample for a tick. Even-indexed axes follow a sine,
// odd-indexed a cosine, so each declared X/Y pair traces a circle.
func (s *Sampler) stateAt(tick int64) State {
	def := s.layout.Definition
	state := State{
		Layout:  def.Name(),
		Tick:    tick,
		Buttons: make(map[string]bool),
		Floats:  make(map[string]float64),
	}

	phase := 2 * math.Pi * float64(tick) / revolutionTicks
	axes := def.FloatControls()
	ranges := def.FloatRanges()
	for i, name := range axes {
		r := ranges[i]
		amplitude := (r.Max - r.Min) / 2 * overdrive
		if i%2 == 0 {
			state.Floats[name] = r.Mid + amplitude*math.Cos(phase)
		} else {
			state.Floats[name] = r.Mid + amplitude*math.Sin(phase)
		}
	}
	def.ApplyAxisConstraints(device.ConstraintClassNatural, state.Floats)

	buttons := def.BoolButtons()
	if len(buttons) > 0 {
		active := int(tick/holdTicks) % len(buttons)
		for i, name := range buttons {
			state.Buttons[name] = i == active
		}
	}

	return state
}

func (s *Sampler) emitState(state State) {
	select {
	case s.changes <- state:
	default:
		// Drop if the channel is full to avoid blocking the tick loop
	}
}
