// ABOUTME: Hydraulics calculator for cementing-job pressure and ECD analysis
// ABOUTME: Pure closed-form formulas over validated slurry and well inputs

package services

import (
	"math"

	"github.com/alexandroood/cementing-hydraulics/models"
)

const (
	// GalPerFt3 converts between ppg and the internal mass-density unit
	GalPerFt3 = 7.48052
	// ThermalExpansionPerF is the linear density correction coefficient
	ThermalExpansionPerF = 0.00028
	// ViscosityDecayPerF is the exponential viscosity decay coefficient
	ViscosityDecayPerF = 0.015
	// ReferenceTempF is the default laboratory reference temperature
	ReferenceTempF = 150.0
	// PsiPerFtPerPPG converts fluid density to pressure gradient
	PsiPerFtPerPPG = 0.052
	// Ft3PerBbl converts cubic feet to oilfield barrels
	Ft3PerBbl = 42.0
	// PaPerLb100Ft2 converts yield point to SI shear stress
	PaPerLb100Ft2 = 0.4788

	// MinViscosityCP floors the thermal correction to a physical value
	MinViscosityCP = 0.001
	// MinHydraulicDiameterFt guards downstream division for tight annuli
	MinHydraulicDiameterFt = 0.0001

	// DefaultProfileSamples is the display resolution of the depth profile
	DefaultProfileSamples = 400
	// DefaultRheologySamples is the display resolution of the flow curve
	DefaultRheologySamples = 120
)

// HydraulicsCalculator computes cementing-job hydraulics. All methods are
// pure functions over their arguments; a single calculator is safe to share
// across requests.
type HydraulicsCalculator struct{}

// NewHydraulicsCalculator creates a new calculator
func NewHydraulicsCalculator() *HydraulicsCalculator {
	return &HydraulicsCalculator{}
}

// CorrectDensity applies a linear thermal-expansion correction to a base
// density. The base value is converted to mass density, corrected about
// refF, and converted back to ppg. Identity when tempF == refF.
func (c *HydraulicsCalculator) CorrectDensity(basePPG, tempF, refF float64) float64 {
	rho := basePPG * GalPerFt3
	rho *= 1 - ThermalExpansionPerF*(tempF-refF)
	return rho / GalPerFt3
}

// CorrectViscosity applies an exponential thermal decay to a base plastic
// viscosity. The result is floored at MinViscosityCP so downstream friction
// terms never see a non-positive viscosity.
func (c *HydraulicsCalculator) CorrectViscosity(baseCP, tempF, refF float64) float64 {
	factor := math.Exp(-ViscosityDecayPerF * (tempF - refF))
	return math.Max(MinViscosityCP, baseCP*factor)
}

// AnnulusArea returns the annular cross-section in ft² for hole and casing
// diameters in inches. Callers must reject casing >= hole first
// (ValidateWellConfiguration); the raw formula goes non-positive there.
func (c *HydraulicsCalculator) AnnulusArea(holeIn, casingIn float64) float64 {
	holeFt := holeIn / 12.0
	casingFt := casingIn / 12.0
	return math.Pi * (holeFt*holeFt - casingFt*casingFt) / 4.0
}

// HydraulicDiameter returns the annular hydraulic diameter in ft, floored
// at MinHydraulicDiameterFt.
func (c *HydraulicsCalculator) HydraulicDiameter(holeIn, casingIn float64) float64 {
	return math.Max(MinHydraulicDiameterFt, (holeIn-casingIn)/12.0)
}

// VolumeAndPumpTime returns the annular cement volume between TOC and TD in
// bbl and the time to place it at the given rate. A rate <= 0 yields pump
// time 0 rather than an error; the summary panel still renders.
func (c *HydraulicsCalculator) VolumeAndPumpTime(areaFt2, tdFt, tocFt, rateBblPerMin float64) (volumeBbl, pumpTimeMin float64) {
	volumeBbl = areaFt2 * GalPerFt3 * (tdFt - tocFt) / Ft3PerBbl
	if rateBblPerMin > 0 {
		pumpTimeMin = volumeBbl / rateBblPerMin
	}
	return volumeBbl, pumpTimeMin
}

// Derive computes the summary properties for a slurry in a well. Thermal
// corrections apply only when the configuration requests them.
func (c *HydraulicsCalculator) Derive(preset models.SlurryPreset, well models.WellConfiguration) models.DerivedProperties {
	density := preset.DensityPPG
	pv := preset.PlasticViscosity
	if well.ApplyThermal {
		density = c.CorrectDensity(density, well.BHCTF, ReferenceTempF)
		pv = c.CorrectViscosity(pv, well.BHCTF, ReferenceTempF)
	}

	area := c.AnnulusArea(well.HoleDiameterIn, well.CasingODIn)
	dh := c.HydraulicDiameter(well.HoleDiameterIn, well.CasingODIn)
	volume, pumpTime := c.VolumeAndPumpTime(area, well.TotalDepthFt, well.TopOfCementFt, well.PumpRateBblPerMin)

	return models.DerivedProperties{
		DensityPPG:          density,
		PlasticViscosity:    pv,
		YieldPoint:          preset.YieldPoint,
		AnnulusAreaFt2:      area,
		HydraulicDiameterFt: dh,
		AnnulusVolumeBbl:    volume,
		PumpTimeMin:         pumpTime,
	}
}

// DepthProfile computes hydrostatic, friction, and total pressure plus ECD
// over evenly spaced depths in [1, TD]. samples <= 1 falls back to the
// default resolution.
//
// The friction term is the empirical demo correlation, not a first-principles
// Bingham-plastic pressure-drop law: a unit coefficient from PV, rate, and YP
// scaled by depth and a geometry multiplier for narrow annuli.
func (c *HydraulicsCalculator) DepthProfile(well models.WellConfiguration, derived models.DerivedProperties, samples int) models.DepthProfile {
	if samples <= 1 {
		samples = DefaultProfileSamples
	}

	geom := math.Max(0.1, 1+(0.45-derived.HydraulicDiameterFt))
	frictionUnit := (derived.PlasticViscosity/10.0)*(well.PumpRateBblPerMin/4.0) + derived.YieldPoint/20.0

	points := make([]models.ProfilePoint, samples)
	step := (well.TotalDepthFt - 1.0) / float64(samples-1)
	for i := range points {
		z := 1.0 + step*float64(i)

		friction := frictionUnit * (z / 1000.0) * 50.0 * geom
		hydrostatic := PsiPerFtPerPPG * derived.DensityPPG * z
		total := hydrostatic + friction

		ecd := total / (PsiPerFtPerPPG * z)
		if math.IsNaN(ecd) || math.IsInf(ecd, 0) {
			ecd = 0
		}

		points[i] = models.ProfilePoint{
			DepthFt:        z,
			HydrostaticPsi: hydrostatic,
			FrictionPsi:    friction,
			TotalPsi:       total,
			ECDPPG:         ecd,
		}
	}

	return models.DepthProfile{Points: points}
}

// RheologyCurve computes the Bingham-plastic flow curve τ = YP + PV·γ over
// a logarithmic shear-rate range of 1 to 1000 1/s. samples <= 1 falls back
// to the default resolution.
func (c *HydraulicsCalculator) RheologyCurve(pvCP, ypLb100Ft2 float64, samples int) models.RheologyCurve {
	if samples <= 1 {
		samples = DefaultRheologySamples
	}

	ypPa := ypLb100Ft2 * PaPerLb100Ft2
	points := make([]models.RheologyPoint, samples)
	// log-spaced from 10^0 to 10^3
	expStep := 3.0 / float64(samples-1)
	for i := range points {
		gamma := math.Pow(10, expStep*float64(i))
		points[i] = models.RheologyPoint{
			ShearRate:   gamma,
			ShearStress: ypPa + (pvCP/1000.0)*gamma,
		}
	}

	return models.RheologyCurve{Points: points}
}

// PlacementFront returns the cement front snapshot at elapsedMin. The front
// starts at TD, reaches TOC after pumpTimeMin, and holds at TOC afterwards.
// A pump time of 0 (degenerate rate) keeps the front at TD.
func (c *HydraulicsCalculator) PlacementFront(tdFt, tocFt, elapsedMin, pumpTimeMin float64) models.PlacementState {
	var frac float64
	if pumpTimeMin > 0 {
		frac = elapsedMin / pumpTimeMin
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
	}

	return models.PlacementState{
		ElapsedMin:   elapsedMin,
		PumpTimeMin:  pumpTimeMin,
		FrontDepthFt: tdFt - frac*(tdFt-tocFt),
		Fraction:     frac,
		Complete:     pumpTimeMin > 0 && frac >= 1,
	}
}

// AnalyzeSafeWindow classifies an ECD profile against the pore-pressure /
// fracture-gradient window. fracture <= pore is reported as a degenerate
// window, not an error; the job is still evaluable.
func (c *HydraulicsCalculator) AnalyzeSafeWindow(profile models.DepthProfile, porePPG, fracPPG float64) models.SafeWindowReport {
	report := models.SafeWindowReport{
		PorePressurePPG: porePPG,
		FractureGradPPG: fracPPG,
		Status:          models.WindowOK,
	}

	if fracPPG <= porePPG {
		report.Degenerate = true
		report.Status = models.WindowNone
	}

	for i, p := range profile.Points {
		if i == 0 || p.ECDPPG < report.MinECDPPG {
			report.MinECDPPG = p.ECDPPG
		}
		if p.ECDPPG > report.MaxECDPPG {
			report.MaxECDPPG = p.ECDPPG
		}

		if report.Degenerate {
			continue
		}
		if p.ECDPPG < porePPG || p.ECDPPG > fracPPG {
			report.Excursions++
			if report.Excursions == 1 {
				report.FirstExcursionFt = p.DepthFt
			}
		}
	}

	if !report.Degenerate && report.Excursions > 0 {
		// Breakdown dominates influx when both occur: losing returns to the
		// formation invalidates the rest of the placement.
		if report.MaxECDPPG > fracPPG {
			report.Status = models.WindowBreakdownRisk
		} else {
			report.Status = models.WindowInfluxRisk
		}
	}

	return report
}
