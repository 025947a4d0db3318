// ABOUTME: HTTP handler wiring for the cementing hydraulics API
// ABOUTME: Holds shared dependencies and JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alexandroood/cementing-hydraulics/cache"
	"github.com/alexandroood/cementing-hydraulics/config"
	"github.com/alexandroood/cementing-hydraulics/models"
	"github.com/alexandroood/cementing-hydraulics/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB.
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg          *config.Config
	cache        *cache.Cache
	catalog      *services.PresetCatalog
	hydraulics   *services.HydraulicsCalculator
	scenarioCalc *services.ScenarioCalculator

	profileSamples  int
	rheologySamples int
}

func NewHandler(cfg *config.Config, c *cache.Cache) *Handler {
	h := &Handler{
		cfg:             cfg,
		cache:           c,
		hydraulics:      services.NewHydraulicsCalculator(),
		profileSamples:  services.DefaultProfileSamples,
		rheologySamples: services.DefaultRheologySamples,
	}

	// Config is optional (for testing)
	if cfg != nil {
		h.catalog = services.NewPresetCatalog(cfg.PresetFile, c)
		h.profileSamples = cfg.ProfileSamples
		h.rheologySamples = cfg.RheologySamples
	}

	h.scenarioCalc = services.NewScenarioCalculator(h.hydraulics, h.profileSamples)

	return h
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// decodeBody decodes a size-limited JSON request body into dst. On failure it
// writes the error response and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
