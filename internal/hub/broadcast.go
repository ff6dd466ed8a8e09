package hub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/emushim/controlview/internal/device"
	"github.com/emushim/controlview/internal/sampler"
	"github.com/emushim/controlview/internal/schema"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for sampled state changes and broadcasts each
// player's slice of the layout to the clients following that player.
// System controls (player 0) are part of every player's view.
type Broadcaster struct {
	hub       *Hub
	layout    *device.Layout
	changes   <-chan sampler.State
	epsilon   float64
	lastState sampler.State
	seq       int64
	mu        sync.Mutex
}

func NewBroadcaster(h *Hub, layout *device.Layout, changes <-chan sampler.State, epsilon float64) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		layout:  layout,
		changes: changes,
		epsilon: epsilon,
	}
}

// ValidPlayer reports whether clients may follow the given player index.
// Index 0 is the system-controls view.
func (b *Broadcaster) ValidPlayer(index int) bool {
	return index >= 0 && index <= b.layout.Definition.PlayerCount()
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case state, ok := <-b.changes:
			if !ok {
				return
			}

			b.mu.Lock()
			delta := sampler.ComputeDelta(b.lastState, state, b.epsilon)
			b.lastState = state
			if delta.IsEmpty() {
				b.mu.Unlock()
				continue
			}
			deltaCount++
			full := deltaCount >= deltaCountSync
			if full {
				deltaCount = 0
			}
			b.mu.Unlock()

			if full {
				b.sendFull(state)
			} else {
				b.sendDelta(delta)
			}

		case <-ticker.C:
			b.mu.Lock()
			state := b.lastState
			b.mu.Unlock()
			if state.Tick > 0 {
				b.sendFull(state)
			}
		}
	}
}

// SendCurrentState sends the full state for the client's player to a
// newly connected (or newly switched) client, preceded by the layout
// schema so the client can lay out its view.
func (b *Broadcaster) SendCurrentState(c *Client) {
	b.mu.Lock()
	state := b.lastState
	seq := b.nextSeqLocked()
	b.mu.Unlock()

	for _, msg := range []*WSMessage{
		NewSchemaMessage(b.layout),
		NewFullMessage(seq, b.filterState(state, c.playerIndex)),
	} {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling initial state: %v", err)
			return
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

func (b *Broadcaster) sendFull(state sampler.State) {
	b.mu.Lock()
	seq := b.nextSeqLocked()
	b.mu.Unlock()

	for player := 0; player <= b.layout.Definition.PlayerCount(); player++ {
		msg := NewFullMessage(seq, b.filterState(state, player))
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling full message: %v", err)
			return
		}
		b.hub.BroadcastToPlayer(data, player)
	}
}

func (b *Broadcaster) sendDelta(delta *sampler.Delta) {
	b.mu.Lock()
	seq := b.nextSeqLocked()
	b.mu.Unlock()

	for player := 0; player <= b.layout.Definition.PlayerCount(); player++ {
		filtered := b.filterDelta(delta, player)
		if filtered.IsEmpty() {
			continue
		}
		msg := NewDeltaMessage(seq, filtered)
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling delta message: %v", err)
			return
		}
		b.hub.BroadcastToPlayer(data, player)
	}
}

func (b *Broadcaster) nextSeqLocked() int64 {
	b.seq++
	return b.seq
}

func visibleTo(control string, player int) bool {
	owner := schema.PlayerNumber(control)
	return owner == player || owner == 0
}

// filterState narrows a state down to the controls a player's view
// shows: the player's own controls plus the system controls.
func (b *Broadcaster) filterState(state sampler.State, player int) *sampler.State {
	filtered := &sampler.State{
		Layout:  state.Layout,
		Tick:    state.Tick,
		Buttons: make(map[string]bool),
		Floats:  make(map[string]float64),
	}
	for name, pressed := range state.Buttons {
		if visibleTo(name, player) {
			filtered.Buttons[name] = pressed
		}
	}
	for name, value := range state.Floats {
		if visibleTo(name, player) {
			filtered.Floats[name] = value
		}
	}
	return filtered
}

func (b *Broadcaster) filterDelta(delta *sampler.Delta, player int) *sampler.Delta {
	filtered := &sampler.Delta{}
	for name, pressed := range delta.Buttons {
		if visibleTo(name, player) {
			if filtered.Buttons == nil {
				filtered.Buttons = make(map[string]bool)
			}
			filtered.Buttons[name] = pressed
		}
	}
	for name, value := range delta.Floats {
		if visibleTo(name, player) {
			if filtered.Floats == nil {
				filtered.Floats = make(map[string]float64)
			}
			filtered.Floats[name] = value
		}
	}
	return filtered
}
