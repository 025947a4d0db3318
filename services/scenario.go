// ABOUTME: Scenario calculator for what-if cementing job analysis
// ABOUTME: Computes metrics and warnings for current vs proposed configurations

package services

import (
	"math"

	"github.com/alexandroood/cementing-hydraulics/models"
)

const (
	// FractureMarginWarnPPG is the ECD margin below the fracture gradient
	// under which a job is flagged as marginal
	FractureMarginWarnPPG = 0.3
	// MinClearanceIn is the annular clearance under which channeling and
	// high friction losses become likely
	MinClearanceIn = 1.0
)

// ScenarioCalculator evaluates what-if comparisons between two job
// configurations using the hydraulics calculator.
type ScenarioCalculator struct {
	hydraulics *HydraulicsCalculator
	samples    int
}

// NewScenarioCalculator creates a new calculator. samples controls the
// depth-profile resolution used for ECD metrics.
func NewScenarioCalculator(hydraulics *HydraulicsCalculator, samples int) *ScenarioCalculator {
	return &ScenarioCalculator{
		hydraulics: hydraulics,
		samples:    samples,
	}
}

// Evaluate computes the metrics for one side of a comparison.
func (c *ScenarioCalculator) Evaluate(preset models.SlurryPreset, well models.WellConfiguration) models.ScenarioResult {
	derived := c.hydraulics.Derive(preset, well)
	profile := c.hydraulics.DepthProfile(well, derived, c.samples)
	window := c.hydraulics.AnalyzeSafeWindow(profile, well.PorePressurePPG, well.FractureGradPPG)

	var ecdAtTD float64
	if n := len(profile.Points); n > 0 {
		ecdAtTD = profile.Points[n-1].ECDPPG
	}

	return models.ScenarioResult{
		Slurry:            preset.Name,
		Derived:           derived,
		MaxECDPPG:         window.MaxECDPPG,
		ECDAtTDPPG:        ecdAtTD,
		FractureMarginPPG: well.FractureGradPPG - window.MaxECDPPG,
		PoreMarginPPG:     window.MinECDPPG - well.PorePressurePPG,
		ClearanceIn:       well.HoleDiameterIn - well.CasingODIn,
		WindowStatus:      window.Status,
	}
}

// GenerateWarnings produces warnings based on the proposed scenario.
func (c *ScenarioCalculator) GenerateWarnings(proposed models.ScenarioResult) []models.ScenarioWarning {
	var warnings []models.ScenarioWarning

	if proposed.WindowStatus == models.WindowNone {
		warnings = append(warnings, models.ScenarioWarning{
			Severity: "critical",
			Message:  "No safe operating window: fracture gradient does not exceed pore pressure",
		})
		return warnings
	}

	if proposed.FractureMarginPPG < 0 {
		warnings = append(warnings, models.ScenarioWarning{
			Severity: "critical",
			Message:  "ECD exceeds fracture gradient: formation breakdown risk",
		})
	} else if proposed.FractureMarginPPG < FractureMarginWarnPPG {
		warnings = append(warnings, models.ScenarioWarning{
			Severity: "warning",
			Message:  "ECD within 0.3 ppg of fracture gradient",
		})
	}

	if proposed.PoreMarginPPG < 0 {
		warnings = append(warnings, models.ScenarioWarning{
			Severity: "critical",
			Message:  "ECD below pore pressure: influx risk",
		})
	}

	if proposed.ClearanceIn < MinClearanceIn {
		warnings = append(warnings, models.ScenarioWarning{
			Severity: "warning",
			Message:  "Annular clearance below 1 in: high friction losses likely",
		})
	}

	return warnings
}

// Compare computes the full comparison between current and proposed jobs.
func (c *ScenarioCalculator) Compare(currentPreset, proposedPreset models.SlurryPreset, input models.ScenarioInput) models.ScenarioComparison {
	current := c.Evaluate(currentPreset, input.Current.Well)
	proposed := c.Evaluate(proposedPreset, input.Proposed.Well)

	marginChangePPG := proposed.FractureMarginPPG - current.FractureMarginPPG
	marginChange := "unchanged"
	// Ignore float noise when both sides compute the same margin.
	if math.Abs(marginChangePPG) > 1e-9 {
		if marginChangePPG > 0 {
			marginChange = "improved"
		} else {
			marginChange = "reduced"
		}
	}

	return models.ScenarioComparison{
		Current:  current,
		Proposed: proposed,
		Warnings: c.GenerateWarnings(proposed),
		Delta: models.ScenarioDelta{
			PumpTimeChangeMin: proposed.Derived.PumpTimeMin - current.Derived.PumpTimeMin,
			VolumeChangeBbl:   proposed.Derived.AnnulusVolumeBbl - current.Derived.AnnulusVolumeBbl,
			MaxECDChangePPG:   proposed.MaxECDPPG - current.MaxECDPPG,
			MarginChangePPG:   marginChangePPG,
			MarginChange:      marginChange,
		},
	}
}
