// ABOUTME: Compare command for the cement-hydro CLI
// ABOUTME: Runs a what-if comparison between the current design and a proposed slurry or rate

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

var (
	compareFlags   jobFlags
	proposedSlurry string
	proposedRate   float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare current and proposed job designs",
	Long: `Run a what-if comparison between the current job design and a proposed
slurry or pump rate, printing deltas and tradeoff warnings.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCompare(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addJobFlags(compareCmd, &compareFlags)
	compareCmd.Flags().StringVar(&proposedSlurry, "proposed-slurry", "", "Proposed slurry preset (defaults to current)")
	compareCmd.Flags().Float64Var(&proposedRate, "proposed-rate", 0, "Proposed pump rate in bbl/min (defaults to current)")
}

// runCompare builds both sides from the flags and prints the comparison
func runCompare(ctx context.Context, w io.Writer) int {
	current := compareFlags.request()

	proposedWell := current.Well
	if proposedRate > 0 {
		proposedWell.PumpRateBblPerMin = proposedRate
	}
	slurry := current.Slurry
	if proposedSlurry != "" {
		slurry = proposedSlurry
	}

	input := &models.ScenarioInput{
		Current:  models.ScenarioSide{Slurry: current.Slurry, Well: current.Well},
		Proposed: models.ScenarioSide{Slurry: slurry, Well: proposedWell},
	}

	c := client.New(GetAPIURL())
	comparison, err := c.CompareScenario(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(comparison, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatComparisonHuman(comparison))
	return 0
}

// formatComparisonHuman renders the comparison with styled deltas and warnings
func formatComparisonHuman(c *models.ScenarioComparison) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Scenario comparison") + "\n\n")

	fmt.Fprintf(&b, "%-20s %14s %14s\n", "", "CURRENT", "PROPOSED")
	fmt.Fprintf(&b, "%-20s %14s %14s\n", "Slurry", c.Current.Slurry, c.Proposed.Slurry)
	fmt.Fprintf(&b, "%-20s %14.2f %14.2f\n", "Max ECD (ppg)", c.Current.MaxECDPPG, c.Proposed.MaxECDPPG)
	fmt.Fprintf(&b, "%-20s %14.2f %14.2f\n", "Frac margin (ppg)", c.Current.FractureMarginPPG, c.Proposed.FractureMarginPPG)
	fmt.Fprintf(&b, "%-20s %14.2f %14.2f\n", "Pump time (min)", c.Current.Derived.PumpTimeMin, c.Proposed.Derived.PumpTimeMin)
	fmt.Fprintf(&b, "%-20s %14s %14s\n", "Window", c.Current.WindowStatus,
		styles.ForWindowStatus(c.Proposed.WindowStatus).Render(c.Proposed.WindowStatus))

	fmt.Fprintf(&b, "\nMargin change: %s (%+.2f ppg)\n", c.Delta.MarginChange, c.Delta.MarginChangePPG)

	for _, warning := range c.Warnings {
		style := styles.StatusWarning
		if warning.Severity == "critical" {
			style = styles.StatusCritical
		}
		fmt.Fprintf(&b, "%s %s\n", style.Render(strings.ToUpper(warning.Severity)+":"), warning.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}
