// ABOUTME: HTTP handler for scenario comparison endpoint
// ABOUTME: Provides what-if analysis comparing current vs proposed job designs

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alexandroood/cementing-hydraulics/models"
	"github.com/alexandroood/cementing-hydraulics/services"
)

// CompareScenario compares the current job design against a proposed one.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) CompareScenario(w http.ResponseWriter, r *http.Request) {
	var input models.ScenarioInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	for _, side := range []struct {
		label string
		well  models.WellConfiguration
	}{
		{"current", input.Current.Well},
		{"proposed", input.Proposed.Well},
	} {
		if err := services.ValidateWellConfiguration(side.well); err != nil {
			h.writeError(w, fmt.Sprintf("%s well: %v", side.label, err), http.StatusBadRequest)
			return
		}
	}

	if h.catalog == nil {
		h.writeError(w, "Preset catalog not configured. Set PRESET_FILE.", http.StatusServiceUnavailable)
		return
	}

	currentPreset, err := h.lookupPreset(w, input.Current.Slurry)
	if err != nil {
		return
	}
	proposedPreset, err := h.lookupPreset(w, input.Proposed.Slurry)
	if err != nil {
		return
	}

	comparison := h.scenarioCalc.Compare(currentPreset, proposedPreset, input)

	h.writeJSON(w, http.StatusOK, comparison)
}

// lookupPreset resolves a preset by name, writing the error response on
// failure. The returned error only signals that a response was written.
func (h *Handler) lookupPreset(w http.ResponseWriter, name string) (models.SlurryPreset, error) {
	preset, err := h.catalog.Get(name)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPreset) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return models.SlurryPreset{}, err
		}
		slog.Error("Preset lookup failed", "error", err)
		h.writeError(w, "Failed to load preset catalog", http.StatusInternalServerError)
		return models.SlurryPreset{}, err
	}
	return preset, nil
}
