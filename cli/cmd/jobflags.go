// ABOUTME: Shared job flag definitions for summary and check commands
// ABOUTME: Binds slurry and well configuration flags to a request struct

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexandroood/cementing-hydraulics/models"
)

// jobFlags collects the slurry and well inputs a command needs to build a
// job request.
type jobFlags struct {
	slurry     string
	hole       float64
	casing     float64
	td         float64
	toc        float64
	rate       float64
	fracGrad   float64
	porePress  float64
	bhct       float64
	thermal    bool
	elapsedMin float64
}

// addJobFlags registers the job input flags on cmd. Defaults mirror a
// typical intermediate casing job.
func addJobFlags(cmd *cobra.Command, f *jobFlags) {
	cmd.Flags().StringVar(&f.slurry, "slurry", "Class G Neat", "Slurry preset name")
	cmd.Flags().Float64Var(&f.hole, "hole", 8.5, "Hole diameter (in)")
	cmd.Flags().Float64Var(&f.casing, "casing", 5.5, "Casing outer diameter (in)")
	cmd.Flags().Float64Var(&f.td, "td", 3000, "Total depth (ft)")
	cmd.Flags().Float64Var(&f.toc, "toc", 1500, "Top of cement (ft)")
	cmd.Flags().Float64Var(&f.rate, "rate", 4, "Pump rate (bbl/min)")
	cmd.Flags().Float64Var(&f.fracGrad, "fracture-gradient", 18.0, "Fracture gradient (ppg)")
	cmd.Flags().Float64Var(&f.porePress, "pore-pressure", 13.5, "Pore pressure (ppg)")
	cmd.Flags().Float64Var(&f.bhct, "bhct", 150, "Bottomhole circulating temperature (F)")
	cmd.Flags().BoolVar(&f.thermal, "thermal", true, "Apply thermal correction to slurry properties")
	cmd.Flags().Float64Var(&f.elapsedMin, "elapsed", 0, "Elapsed pumping time for placement snapshot (min)")
}

// request builds the API job request from the flag values.
func (f *jobFlags) request() *models.JobRequest {
	return &models.JobRequest{
		Slurry: f.slurry,
		Well: models.WellConfiguration{
			HoleDiameterIn:    f.hole,
			CasingODIn:        f.casing,
			TotalDepthFt:      f.td,
			TopOfCementFt:     f.toc,
			PumpRateBblPerMin: f.rate,
			FractureGradPPG:   f.fracGrad,
			PorePressurePPG:   f.porePress,
			BHCTF:             f.bhct,
			ApplyThermal:      f.thermal,
		},
		ElapsedMin: f.elapsedMin,
	}
}
