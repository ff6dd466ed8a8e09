package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emushim/controlview/internal/device"
	"github.com/emushim/controlview/internal/hub"
)

// layoutSummary is one row of the /api/layouts listing.
type layoutSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	PlayerCount int    `json:"playerCount"`
}

func handleLayouts(w http.ResponseWriter, r *http.Request) {
	summaries := make([]layoutSummary, 0, len(device.Names()))
	for _, name := range device.Names() {
		layout, _ := device.Lookup(name)
		summaries = append(summaries, layoutSummary{
			Name:        name,
			Title:       layout.Definition.Name(),
			PlayerCount: layout.Definition.PlayerCount(),
		})
	}
	writeJSON(w, summaries)
}

func handleLayout(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	layout, ok := device.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, hub.NewSchemaMessage(layout).Schema)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
