// ABOUTME: Check command for the cement-hydro CLI
// ABOUTME: Gates CI/CD pipelines on ECD safety margins

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
	checkFlags     jobFlags
	minMarginPPG   float64
	allowInfluxRun bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check job safety margins",
	Long: `Evaluate a cementing job and exit non-zero if safety margins are violated.

Exit codes:
  0 - All checks passed
  1 - Safe window violated or margin below threshold
  2 - Error (connectivity, unknown preset, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addJobFlags(checkCmd, &checkFlags)
	checkCmd.Flags().Float64Var(&minMarginPPG, "min-margin", 0.3, "Minimum fracture margin (ppg)")
	checkCmd.Flags().BoolVar(&allowInfluxRun, "allow-influx", false, "Treat influx risk as a warning instead of a failure")
}

// checkResult represents the outcome of a single safety check
type checkResult struct {
	name   string
	detail string
	passed bool
}

// runCheck evaluates the job and applies the safety checks, returning exit code
func runCheck(ctx context.Context, w io.Writer) int {
	if minMarginPPG < 0 {
		fmt.Fprintln(w, "Error: --min-margin must not be negative")
		return 2
	}

	c := client.New(GetAPIURL())
	job, err := c.EvaluateJob(ctx, checkFlags.request())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := performChecks(job, checkFlags.fracGrad)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	for _, r := range results {
		if !r.passed {
			return 1
		}
	}
	return 0
}

// performChecks derives pass/fail results from the evaluated job
func performChecks(job *models.JobResponse, fracGrad float64) []checkResult {
	win := job.SafeWindow
	margin := fracGrad - win.MaxECDPPG

	results := []checkResult{
		{
			name:   "safe window",
			detail: win.Status,
			passed: win.Status == models.WindowOK ||
				(allowInfluxRun && win.Status == models.WindowInfluxRisk),
		},
		{
			name:   "fracture margin",
			detail: fmt.Sprintf("%.2f ppg (min %.2f)", margin, minMarginPPG),
			passed: margin >= minMarginPPG,
		},
	}

	return results
}

// formatCheckHuman renders check results with status colors
func formatCheckHuman(results []checkResult) string {
	var b strings.Builder
	for _, r := range results {
		status := styles.StatusOK.Render("PASS")
		if !r.passed {
			status = styles.StatusCritical.Render("FAIL")
		}
		fmt.Fprintf(&b, "%s  %-16s %s\n", status, r.name, r.detail)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatCheckJSON renders check results as JSON for pipelines
func formatCheckJSON(results []checkResult) string {
	type jsonResult struct {
		Name   string `json:"name"`
		Detail string `json:"detail"`
		Passed bool   `json:"passed"`
	}

	out := make([]jsonResult, 0, len(results))
	passed := true
	for _, r := range results {
		out = append(out, jsonResult{Name: r.name, Detail: r.detail, Passed: r.passed})
		if !r.passed {
			passed = false
		}
	}

	data, _ := json.MarshalIndent(map[string]interface{}{
		"passed": passed,
		"checks": out,
	}, "", "  ")
	return string(data)
}
