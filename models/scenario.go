// ABOUTME: Scenario comparison models for what-if job analysis
// ABOUTME: Current vs proposed slurry/well configurations with deltas and warnings

package models

// ScenarioSide is one side of a comparison: a slurry choice plus a well
// configuration.
type ScenarioSide struct {
	Slurry string            `json:"slurry"`
	Well   WellConfiguration `json:"well"`
}

// ScenarioInput represents a what-if comparison request.
type ScenarioInput struct {
	Current  ScenarioSide `json:"current"`
	Proposed ScenarioSide `json:"proposed"`
}

// ScenarioResult represents computed metrics for one side of a comparison.
type ScenarioResult struct {
	Slurry            string            `json:"slurry"`
	Derived           DerivedProperties `json:"derived"`
	MaxECDPPG         float64           `json:"max_ecd_ppg"`
	ECDAtTDPPG        float64           `json:"ecd_at_td_ppg"`
	FractureMarginPPG float64           `json:"fracture_margin_ppg"`
	PoreMarginPPG     float64           `json:"pore_margin_ppg"`
	ClearanceIn       float64           `json:"clearance_in"`
	WindowStatus      string            `json:"window_status"`
}

// ScenarioDelta represents changes between current and proposed
type ScenarioDelta struct {
	PumpTimeChangeMin float64 `json:"pump_time_change_min"`
	VolumeChangeBbl   float64 `json:"volume_change_bbl"`
	MaxECDChangePPG   float64 `json:"max_ecd_change_ppg"`
	MarginChangePPG   float64 `json:"margin_change_ppg"`
	MarginChange      string  `json:"margin_change"` // improved, reduced, unchanged
}

// ScenarioWarning represents a tradeoff warning
type ScenarioWarning struct {
	Severity string `json:"severity"` // warning or critical
	Message  string `json:"message"`
}

// ScenarioComparison represents full comparison response
type ScenarioComparison struct {
	Current  ScenarioResult    `json:"current"`
	Proposed ScenarioResult    `json:"proposed"`
	Delta    ScenarioDelta     `json:"delta"`
	Warnings []ScenarioWarning `json:"warnings"`
}
