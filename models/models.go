// ABOUTME: Data models for slurry presets, well configurations, and API responses
// ABOUTME: JSON-serializable value structs consumed by the display layer

package models

import "time"

// SlurryPreset is one row of the slurry catalog. Base properties are
// laboratory values at the reference temperature; the engine never mutates
// a preset.
type SlurryPreset struct {
	Name             string  `json:"name"`
	DensityPPG       float64 `json:"density_ppg"`
	PlasticViscosity float64 `json:"plastic_viscosity_cP"`
	YieldPoint       float64 `json:"yield_point_lb100ft2"`
	ReferenceBHCT    float64 `json:"bhct_f"`
}

// WellConfiguration describes the wellbore geometry and pumping operation.
// Invariants (enforced by services.ValidateWellConfiguration):
// hole > casing > 0, 0 <= TOC < TD.
type WellConfiguration struct {
	HoleDiameterIn    float64 `json:"hole_diameter_in"`
	CasingODIn        float64 `json:"casing_od_in"`
	TotalDepthFt      float64 `json:"total_depth_ft"`
	TopOfCementFt     float64 `json:"top_of_cement_ft"`
	PumpRateBblPerMin float64 `json:"pump_rate_bbl_per_min"`
	FractureGradPPG   float64 `json:"fracture_gradient_ppg"`
	PorePressurePPG   float64 `json:"pore_pressure_ppg"`
	BHCTF             float64 `json:"bhct_f"`
	ApplyThermal      bool    `json:"apply_thermal_correction"`
}

// DerivedProperties are the per-job quantities shown in the summary panel.
// PumpTimeMin is 0 when the pump rate is not positive.
type DerivedProperties struct {
	DensityPPG          float64 `json:"density_ppg"`
	PlasticViscosity    float64 `json:"plastic_viscosity_cP"`
	YieldPoint          float64 `json:"yield_point_lb100ft2"`
	AnnulusAreaFt2      float64 `json:"annulus_area_ft2"`
	HydraulicDiameterFt float64 `json:"annulus_hydraulic_diameter_ft"`
	AnnulusVolumeBbl    float64 `json:"annulus_volume_bbl"`
	PumpTimeMin         float64 `json:"pump_time_min"`
}

// ProfilePoint is one depth sample of the circulating pressure profile.
type ProfilePoint struct {
	DepthFt        float64 `json:"depth_ft"`
	HydrostaticPsi float64 `json:"hydrostatic_psi"`
	FrictionPsi    float64 `json:"friction_psi"`
	TotalPsi       float64 `json:"total_psi"`
	ECDPPG         float64 `json:"ecd_ppg"`
}

// DepthProfile is an ordered pressure/ECD profile over [1, TD].
type DepthProfile struct {
	Points []ProfilePoint `json:"points"`
}

// RheologyPoint is one (shear rate, shear stress) sample of the Bingham
// plastic flow curve.
type RheologyPoint struct {
	ShearRate   float64 `json:"shear_rate_1_per_s"`
	ShearStress float64 `json:"shear_stress_pa"`
}

// RheologyCurve is an ordered flow curve over a logarithmic shear-rate range.
type RheologyCurve struct {
	Points []RheologyPoint `json:"points"`
}

// Safe window statuses reported on SafeWindowReport.
const (
	WindowOK            = "ok"
	WindowInfluxRisk    = "influx_risk"
	WindowBreakdownRisk = "breakdown_risk"
	WindowNone          = "no_window"
)

// SafeWindowReport classifies the ECD profile against the pore-pressure /
// fracture-gradient window. Degenerate means fracture <= pore and no window
// exists; the display layer must not shade a negative-height band.
type SafeWindowReport struct {
	PorePressurePPG  float64 `json:"pore_pressure_ppg"`
	FractureGradPPG  float64 `json:"fracture_gradient_ppg"`
	Degenerate       bool    `json:"degenerate"`
	MinECDPPG        float64 `json:"min_ecd_ppg"`
	MaxECDPPG        float64 `json:"max_ecd_ppg"`
	Excursions       int     `json:"excursions"`
	FirstExcursionFt float64 `json:"first_excursion_ft,omitempty"`
	Status           string  `json:"status"`
}

// PlacementState is a snapshot of the cement front at a given elapsed time.
// The front moves from TD toward TOC and holds at TOC once pumping is done.
type PlacementState struct {
	ElapsedMin   float64 `json:"elapsed_min"`
	PumpTimeMin  float64 `json:"pump_time_min"`
	FrontDepthFt float64 `json:"front_depth_ft"`
	Fraction     float64 `json:"fraction"`
	Complete     bool    `json:"complete"`
}

// JobRequest selects a slurry preset and a well configuration to evaluate.
// ElapsedMin is optional and only affects the placement snapshot.
type JobRequest struct {
	Slurry     string            `json:"slurry"`
	Well       WellConfiguration `json:"well"`
	ElapsedMin float64           `json:"elapsed_min,omitempty"`
}

// JobResponse is the unified API response for one cementing job evaluation.
type JobResponse struct {
	Slurry     SlurryPreset      `json:"slurry"`
	Derived    DerivedProperties `json:"derived"`
	Profile    DepthProfile      `json:"profile"`
	Rheology   RheologyCurve     `json:"rheology"`
	SafeWindow SafeWindowReport  `json:"safe_window"`
	Placement  PlacementState    `json:"placement"`
	Metadata   Metadata          `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp      time.Time `json:"timestamp"`
	PresetSource   string    `json:"preset_source"`
	ProfileSamples int       `json:"profile_samples"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
