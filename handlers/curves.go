// ABOUTME: HTTP handlers for individual curve endpoints
// ABOUTME: Serves the depth profile, rheology curve, and placement snapshot separately

package handlers

import "net/http"

// ComputeProfile returns the circulating pressure profile and its safe-window
// report without the rest of the job evaluation.
func (h *Handler) ComputeProfile(w http.ResponseWriter, r *http.Request) {
	req, preset, ok := h.resolveJob(w, r)
	if !ok {
		return
	}

	derived := h.hydraulics.Derive(preset, req.Well)
	profile := h.hydraulics.DepthProfile(req.Well, derived, h.profileSamples)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":     profile,
		"safe_window": h.hydraulics.AnalyzeSafeWindow(profile, req.Well.PorePressurePPG, req.Well.FractureGradPPG),
	})
}

// ComputeRheology returns the Bingham plastic flow curve for the selected
// slurry at the requested circulating temperature.
func (h *Handler) ComputeRheology(w http.ResponseWriter, r *http.Request) {
	req, preset, ok := h.resolveJob(w, r)
	if !ok {
		return
	}

	derived := h.hydraulics.Derive(preset, req.Well)
	curve := h.hydraulics.RheologyCurve(derived.PlasticViscosity, derived.YieldPoint, h.rheologySamples)

	h.writeJSON(w, http.StatusOK, curve)
}

// ComputePlacement returns the cement front position at the requested
// elapsed time.
func (h *Handler) ComputePlacement(w http.ResponseWriter, r *http.Request) {
	req, preset, ok := h.resolveJob(w, r)
	if !ok {
		return
	}

	derived := h.hydraulics.Derive(preset, req.Well)
	state := h.hydraulics.PlacementFront(req.Well.TotalDepthFt, req.Well.TopOfCementFt, req.ElapsedMin, derived.PumpTimeMin)

	h.writeJSON(w, http.StatusOK, state)
}
