package hub

import (
	"time"

	"github.com/emushim/controlview/internal/device"
	"github.com/emushim/controlview/internal/sampler"
	"github.com/emushim/controlview/internal/schema"
)

// WSMessage represents a WebSocket message sent from server to client.
type WSMessage struct {
	Type        string         `json:"type"`                  // Message type: "schema", "full", "delta", "player_selected"
	Seq         int64          `json:"seq"`                   // Sequence number for ordering
	Timestamp   int64          `json:"timestamp"`             // Unix timestamp in milliseconds
	Schema      *SchemaPayload `json:"schema,omitempty"`      // Layout description for type "schema"
	Data        *sampler.State `json:"data,omitempty"`        // Full control state for type "full"
	Changes     *sampler.Delta `json:"changes,omitempty"`     // Changed controls for type "delta"
	PlayerIndex int            `json:"playerIndex,omitempty"` // Player index for type "player_selected"
}

// SchemaPayload describes a layout to a client: its display grouping,
// the per-axis ranges and digit widths, and the category labels.
type SchemaPayload struct {
	Name        string                       `json:"name"`
	PlayerCount int                          `json:"playerCount"`
	Groups      [][]string                   `json:"groups"`
	Ranges      map[string]schema.FloatRange `json:"ranges"`
	Widths      map[string]int               `json:"widths"`
	Labels      map[string]string            `json:"labels"`
}

// NewSchemaMessage builds the layout description sent once on connect.
func NewSchemaMessage(layout *device.Layout) *WSMessage {
	def := layout.Definition
	payload := &SchemaPayload{
		Name:        def.Name(),
		PlayerCount: def.PlayerCount(),
		Groups:      layout.Groups(),
		Ranges:      make(map[string]schema.FloatRange),
		Widths:      make(map[string]int),
		Labels:      def.CategoryLabels(),
	}
	for i, name := range def.FloatControls() {
		r := def.FloatRanges()[i]
		payload.Ranges[name] = r
		payload.Widths[name] = r.MaxDigits()
	}
	return &WSMessage{
		Type:      "schema",
		Timestamp: time.Now().UnixMilli(),
		Schema:    payload,
	}
}

// NewFullMessage creates a "full" type message containing complete control state.
func NewFullMessage(seq int64, state *sampler.State) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

// NewDeltaMessage creates a "delta" type message containing only changed controls.
func NewDeltaMessage(seq int64, changes *sampler.Delta) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// NewPlayerSelectedMessage creates a "player_selected" confirmation message.
func NewPlayerSelectedMessage(playerIndex int) *WSMessage {
	return &WSMessage{
		Type:        "player_selected",
		Seq:         0,
		Timestamp:   time.Now().UnixMilli(),
		PlayerIndex: playerIndex,
	}
}

// ClientMessage represents a message sent from the client to the server.
type ClientMessage struct {
	Type        string `json:"type"`
	PlayerIndex int    `json:"playerIndex,omitempty"`
}
