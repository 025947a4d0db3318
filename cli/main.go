// ABOUTME: Entry point for the cement-hydro CLI
// ABOUTME: Command-line tool for job evaluation and CI/CD safety gates

package main

import (
	"fmt"
	"os"

	"github.com/alexandroood/cementing-hydraulics/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
