// ABOUTME: HTTP handler for the unified cementing job evaluation
// ABOUTME: Resolves the slurry preset and returns derived properties, curves, and the safe window

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexandroood/cementing-hydraulics/models"
	"github.com/alexandroood/cementing-hydraulics/services"
)

// resolveJob decodes a job request, validates the well, and looks up the
// slurry preset. On failure it writes the error response and returns false.
func (h *Handler) resolveJob(w http.ResponseWriter, r *http.Request) (models.JobRequest, models.SlurryPreset, bool) {
	var req models.JobRequest
	if !h.decodeBody(w, r, &req) {
		return models.JobRequest{}, models.SlurryPreset{}, false
	}

	if err := services.ValidateWellConfiguration(req.Well); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return models.JobRequest{}, models.SlurryPreset{}, false
	}

	if h.catalog == nil {
		h.writeError(w, "Preset catalog not configured. Set PRESET_FILE.", http.StatusServiceUnavailable)
		return models.JobRequest{}, models.SlurryPreset{}, false
	}

	preset, err := h.catalog.Get(req.Slurry)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPreset) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return models.JobRequest{}, models.SlurryPreset{}, false
		}
		slog.Error("Preset lookup failed", "error", err)
		h.writeError(w, "Failed to load preset catalog", http.StatusInternalServerError)
		return models.JobRequest{}, models.SlurryPreset{}, false
	}

	return req, preset, true
}

// EvaluateJob computes the full evaluation for one slurry and well: derived
// properties, depth profile, rheology curve, safe window, and placement.
func (h *Handler) EvaluateJob(w http.ResponseWriter, r *http.Request) {
	req, preset, ok := h.resolveJob(w, r)
	if !ok {
		return
	}

	derived := h.hydraulics.Derive(preset, req.Well)
	profile := h.hydraulics.DepthProfile(req.Well, derived, h.profileSamples)

	resp := models.JobResponse{
		Slurry:     preset,
		Derived:    derived,
		Profile:    profile,
		Rheology:   h.hydraulics.RheologyCurve(derived.PlasticViscosity, derived.YieldPoint, h.rheologySamples),
		SafeWindow: h.hydraulics.AnalyzeSafeWindow(profile, req.Well.PorePressurePPG, req.Well.FractureGradPPG),
		Placement:  h.hydraulics.PlacementFront(req.Well.TotalDepthFt, req.Well.TopOfCementFt, req.ElapsedMin, derived.PumpTimeMin),
		Metadata: models.Metadata{
			Timestamp:      time.Now(),
			PresetSource:   h.catalog.Source(),
			ProfileSamples: h.profileSamples,
		},
	}

	h.writeJSON(w, http.StatusOK, resp)
}
