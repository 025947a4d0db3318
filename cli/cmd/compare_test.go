// ABOUTME: Tests for the compare command
// ABOUTME: Verifies request construction and comparison output

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexandroood/cementing-hydraulics/models"
)

func TestCompareCommand_ProposedSlurry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input models.ScenarioInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if input.Current.Slurry != "Class G Neat" {
			t.Errorf("current slurry = %q", input.Current.Slurry)
		}
		if input.Proposed.Slurry != "High Density Tail" {
			t.Errorf("proposed slurry = %q", input.Proposed.Slurry)
		}

		json.NewEncoder(w).Encode(models.ScenarioComparison{
			Current:  models.ScenarioResult{Slurry: input.Current.Slurry, WindowStatus: models.WindowOK},
			Proposed: models.ScenarioResult{Slurry: input.Proposed.Slurry, WindowStatus: models.WindowOK},
			Delta:    models.ScenarioDelta{MarginChange: "reduced", MarginChangePPG: -0.8},
			Warnings: []models.ScenarioWarning{{Severity: "warning", Message: "ECD within 0.3 ppg of fracture gradient"}},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	compareFlags = jobFlags{slurry: "Class G Neat", rate: 4}
	proposedSlurry = "High Density Tail"
	proposedRate = 0
	defer func() { proposedSlurry = ""; proposedRate = 0 }()

	var buf bytes.Buffer
	if exitCode := runCompare(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("reduced")) {
		t.Error("expected margin change in output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("WARNING:")) {
		t.Error("expected warning line in output")
	}
}

func TestCompareCommand_ProposedRateApplied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input models.ScenarioInput
		json.NewDecoder(r.Body).Decode(&input)
		if input.Proposed.Well.PumpRateBblPerMin != 2 {
			t.Errorf("proposed rate = %v, want 2", input.Proposed.Well.PumpRateBblPerMin)
		}
		if input.Current.Well.PumpRateBblPerMin != 4 {
			t.Errorf("current rate = %v, want 4", input.Current.Well.PumpRateBblPerMin)
		}
		json.NewEncoder(w).Encode(models.ScenarioComparison{})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	compareFlags = jobFlags{slurry: "Class G Neat", rate: 4}
	proposedRate = 2
	defer func() { proposedRate = 0 }()

	var buf bytes.Buffer
	if exitCode := runCompare(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
}

func TestCompareCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:1"
	defer func() { apiURL = "" }()
	compareFlags = jobFlags{slurry: "Class G Neat"}

	var buf bytes.Buffer
	if exitCode := runCompare(context.Background(), &buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}
