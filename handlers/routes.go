// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Preset catalog
		{Method: http.MethodGet, Path: "/api/v1/presets", Handler: h.ListPresets},
		{Method: http.MethodGet, Path: "/api/v1/presets/{name}", Handler: h.GetPreset},

		// Job evaluation
		{Method: http.MethodPost, Path: "/api/v1/job", Handler: h.EvaluateJob},
		{Method: http.MethodPost, Path: "/api/v1/profile", Handler: h.ComputeProfile},
		{Method: http.MethodPost, Path: "/api/v1/rheology", Handler: h.ComputeRheology},
		{Method: http.MethodPost, Path: "/api/v1/placement", Handler: h.ComputePlacement},

		// Scenario
		{Method: http.MethodPost, Path: "/api/v1/scenario/compare", Handler: h.CompareScenario},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
