// ABOUTME: Health command for the cement-hydro CLI
// ABOUTME: Checks backend connectivity and catalog status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexandroood/cementing-hydraulics/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the cementing hydraulics backend and verify catalog status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	if resp.Status != "ok" {
		return 1
	}
	return 0
}

// formatHealthHuman formats the health response for human readability
func formatHealthHuman(url string, resp *client.HealthResponse) string {
	return fmt.Sprintf(`Backend: %s
Status:  %s
Catalog: %s
Presets: %d`, url, resp.Status, resp.Catalog, resp.PresetCount)
}

// formatHealthJSON formats the health response as JSON
func formatHealthJSON(url string, resp *client.HealthResponse) string {
	output := map[string]interface{}{
		"backend":      url,
		"status":       resp.Status,
		"catalog":      resp.Catalog,
		"preset_count": resp.PresetCount,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
