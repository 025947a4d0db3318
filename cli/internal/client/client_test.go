// ABOUTME: Tests for the cementing hydraulics API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexandroood/cementing-hydraulics/models"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("expected path /api/v1/health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:      "ok",
			Catalog:     "ok",
			PresetCount: 6,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
	if resp.PresetCount != 6 {
		t.Errorf("expected 6 presets, got %d", resp.PresetCount)
	}
}

func TestHealth_ConnectionError(t *testing.T) {
	c := New("http://localhost:1")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestHealth_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Health(context.Background())
	if err == nil {
		t.Error("expected error for non-OK status, got nil")
	}
}

func TestHealth_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := c.Health(ctx)
	if err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestPresets_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/presets" {
			t.Errorf("expected path /api/v1/presets, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(PresetsResponse{
			Presets: []models.SlurryPreset{{Name: "Class G Neat", DensityPPG: 15.8}},
			Source:  "sample_slurries.csv",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Presets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Presets) != 1 || resp.Presets[0].Name != "Class G Neat" {
		t.Errorf("unexpected presets: %+v", resp.Presets)
	}
}

func TestGetPreset_EscapesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/v1/presets/Class%20G%20Neat" {
			t.Errorf("expected escaped path, got %s", r.URL.EscapedPath())
		}
		json.NewEncoder(w).Encode(models.SlurryPreset{Name: "Class G Neat"})
	}))
	defer server.Close()

	c := New(server.URL)
	preset, err := c.GetPreset(context.Background(), "Class G Neat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preset.Name != "Class G Neat" {
		t.Errorf("unexpected preset: %+v", preset)
	}
}

func TestEvaluateJob_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/job" {
			t.Errorf("expected POST /api/v1/job, got %s %s", r.Method, r.URL.Path)
		}

		var req models.JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if req.Slurry != "Class G Neat" {
			t.Errorf("expected slurry in request, got %q", req.Slurry)
		}

		json.NewEncoder(w).Encode(models.JobResponse{
			Slurry:  models.SlurryPreset{Name: req.Slurry},
			Derived: models.DerivedProperties{AnnulusVolumeBbl: 61.2},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	job, err := c.EvaluateJob(context.Background(), &models.JobRequest{Slurry: "Class G Neat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Derived.AnnulusVolumeBbl != 61.2 {
		t.Errorf("unexpected volume: %v", job.Derived.AnnulusVolumeBbl)
	}
}

func TestEvaluateJob_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid annulus geometry", Code: 400})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.EvaluateJob(context.Background(), &models.JobRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := err.Error(); got != "backend error: invalid annulus geometry" {
		t.Errorf("unexpected error message: %q", got)
	}
}

func TestCompareScenario_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/scenario/compare" {
			t.Errorf("expected POST /api/v1/scenario/compare, got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.ScenarioComparison{
			Delta: models.ScenarioDelta{MarginChange: "reduced"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	comparison, err := c.CompareScenario(context.Background(), &models.ScenarioInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comparison.Delta.MarginChange != "reduced" {
		t.Errorf("unexpected delta: %+v", comparison.Delta)
	}
}
