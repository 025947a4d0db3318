// ABOUTME: HTTP handlers for the slurry preset catalog
// ABOUTME: Lists the catalog and resolves individual presets by name

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexandroood/cementing-hydraulics/services"
)

// ListPresets returns every slurry preset in the catalog.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		h.writeError(w, "Preset catalog not configured. Set PRESET_FILE.", http.StatusServiceUnavailable)
		return
	}

	presets, err := h.catalog.List()
	if err != nil {
		slog.Error("Preset catalog load failed", "error", err)
		h.writeError(w, "Failed to load preset catalog", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"presets": presets,
		"source":  h.catalog.Source(),
	})
}

// GetPreset returns a single slurry preset by name.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		h.writeError(w, "Preset catalog not configured. Set PRESET_FILE.", http.StatusServiceUnavailable)
		return
	}

	preset, err := h.catalog.Get(r.PathValue("name"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownPreset) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		slog.Error("Preset lookup failed", "error", err)
		h.writeError(w, "Failed to load preset catalog", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, preset)
}
