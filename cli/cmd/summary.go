// ABOUTME: Summary command for the cement-hydro CLI
// ABOUTME: Evaluates one job and prints derived properties and the safe window

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexandroood/cementing-hydraulics/cli/internal/client"
	"github.com/alexandroood/cementing-hydraulics/cli/internal/styles"
	"github.com/alexandroood/cementing-hydraulics/models"
)

var summaryFlags jobFlags

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Evaluate a cementing job",
	Long:  `Evaluate a cementing job and print derived properties, pump schedule, and the safe operating window.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSummary(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addJobFlags(summaryCmd, &summaryFlags)
}

// runSummary evaluates the job and prints the summary, returning exit code
func runSummary(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	job, err := c.EvaluateJob(ctx, summaryFlags.request())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(job, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatSummaryHuman(job))
	return 0
}

// formatSummaryHuman renders a job evaluation for terminal display
func formatSummaryHuman(job *models.JobResponse) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Job summary: "+job.Slurry.Name) + "\n\n")

	d := job.Derived
	fmt.Fprintf(&b, "Density (corrected):   %8.2f ppg\n", d.DensityPPG)
	fmt.Fprintf(&b, "Plastic viscosity:     %8.2f cP\n", d.PlasticViscosity)
	fmt.Fprintf(&b, "Annulus area:          %8.4f ft2\n", d.AnnulusAreaFt2)
	fmt.Fprintf(&b, "Annulus volume:        %8.2f bbl\n", d.AnnulusVolumeBbl)
	if d.PumpTimeMin > 0 {
		fmt.Fprintf(&b, "Pump time:             %8.2f min\n", d.PumpTimeMin)
	} else {
		fmt.Fprintf(&b, "Pump time:             %8s\n", "n/a")
	}

	win := job.SafeWindow
	fmt.Fprintf(&b, "ECD range:             %.2f - %.2f ppg\n", win.MinECDPPG, win.MaxECDPPG)
	fmt.Fprintf(&b, "Safe window:           %s\n", styles.ForWindowStatus(win.Status).Render(win.Status))
	if win.Excursions > 0 {
		fmt.Fprintf(&b, "Excursions:            %d (first at %.0f ft)\n", win.Excursions, win.FirstExcursionFt)
	}

	return strings.TrimRight(b.String(), "\n")
}
