// ABOUTME: Presets command for the cement-hydro CLI
// ABOUTME: Lists the slurry catalog served by the backend

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
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List slurry presets",
	Long:  `List the slurry presets available in the backend catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPresets(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

// runPresets fetches and prints the slurry catalog, returning exit code
func runPresets(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Presets(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatPresetsHuman(resp))
	return 0
}

// formatPresetsHuman renders the catalog as an aligned table
func formatPresetsHuman(resp *client.PresetsResponse) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Slurry catalog") + "\n")
	b.WriteString(styles.Label.Render("source: "+resp.Source) + "\n\n")
	fmt.Fprintf(&b, "%-24s %10s %8s %8s %8s\n", "NAME", "DENSITY", "PV", "YP", "BHCT")
	for _, p := range resp.Presets {
		fmt.Fprintf(&b, "%-24s %10.1f %8.1f %8.1f %8.0f\n",
			p.Name, p.DensityPPG, p.PlasticViscosity, p.YieldPoint, p.ReferenceBHCT)
	}
	return strings.TrimRight(b.String(), "\n")
}
