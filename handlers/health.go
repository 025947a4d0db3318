// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service status and preset catalog availability

package handlers

import (
	"log/slog"
	"net/http"
)

// Health returns API health status including the preset catalog state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "ok",
		"catalog": "not_configured",
	}

	if h.catalog != nil {
		if presets, err := h.catalog.List(); err != nil {
			slog.Error("Preset catalog unavailable", "source", h.catalog.Source(), "error", err)
			resp["catalog"] = "unavailable"
			resp["status"] = "degraded"
		} else {
			resp["catalog"] = "ok"
			resp["preset_count"] = len(presets)
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}
