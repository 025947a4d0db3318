// ABOUTME: End-to-end tests for the scenario comparison flow
// ABOUTME: Verifies what-if deltas and warnings through the full stack

package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alexandroood/cementing-hydraulics/models"
)

func TestScenarioFlow_DenserTailSlurry(t *testing.T) {
	mux := newTestServer(t, serverOptions{})

	well := defaultWell()
	well.FractureGradPPG = 19.5

	input := models.ScenarioInput{
		Current:  models.ScenarioSide{Slurry: "Class G Neat", Well: well},
		Proposed: models.ScenarioSide{Slurry: "High Density Tail", Well: well},
	}

	rr := postJob(t, mux, "/api/v1/scenario/compare", input)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var comparison models.ScenarioComparison
	if err := json.NewDecoder(rr.Body).Decode(&comparison); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if comparison.Delta.MaxECDChangePPG <= 0 {
		t.Errorf("expected positive ECD delta, got %v", comparison.Delta.MaxECDChangePPG)
	}
	if comparison.Delta.MarginChange != "reduced" {
		t.Errorf("margin change = %q, want reduced", comparison.Delta.MarginChange)
	}
}

func TestScenarioFlow_SlowerRateTradesTimeForECD(t *testing.T) {
	mux := newTestServer(t, serverOptions{})

	slower := defaultWell()
	slower.PumpRateBblPerMin = 2

	input := models.ScenarioInput{
		Current:  models.ScenarioSide{Slurry: "Class G Neat", Well: defaultWell()},
		Proposed: models.ScenarioSide{Slurry: "Class G Neat", Well: slower},
	}

	rr := postJob(t, mux, "/api/v1/scenario/compare", input)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var comparison models.ScenarioComparison
	json.NewDecoder(rr.Body).Decode(&comparison)

	if comparison.Delta.PumpTimeChangeMin <= 0 {
		t.Errorf("expected longer pump time at half rate, delta = %v", comparison.Delta.PumpTimeChangeMin)
	}
	if comparison.Delta.MaxECDChangePPG >= 0 {
		t.Errorf("expected lower max ECD at half rate, delta = %v", comparison.Delta.MaxECDChangePPG)
	}
	if comparison.Delta.MarginChange != "improved" {
		t.Errorf("margin change = %q, want improved", comparison.Delta.MarginChange)
	}
}

func TestScenarioFlow_NoWindowWarning(t *testing.T) {
	mux := newTestServer(t, serverOptions{})

	well := defaultWell()
	well.FractureGradPPG = 12.0
	well.PorePressurePPG = 13.5

	input := models.ScenarioInput{
		Current:  models.ScenarioSide{Slurry: "Class G Neat", Well: well},
		Proposed: models.ScenarioSide{Slurry: "Class G Neat", Well: well},
	}

	rr := postJob(t, mux, "/api/v1/scenario/compare", input)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var comparison models.ScenarioComparison
	json.NewDecoder(rr.Body).Decode(&comparison)

	if comparison.Proposed.WindowStatus != models.WindowNone {
		t.Errorf("window status = %q, want no_window", comparison.Proposed.WindowStatus)
	}

	foundCritical := false
	for _, w := range comparison.Warnings {
		if w.Severity == "critical" {
			foundCritical = true
		}
	}
	if !foundCritical {
		t.Errorf("expected critical warning, got %+v", comparison.Warnings)
	}
}
