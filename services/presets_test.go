// ABOUTME: Tests for the slurry preset catalog
// ABOUTME: Validates CSV parsing, schema errors, caching, and lookups

package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexandroood/cementing-hydraulics/cache"
)

const sampleCSV = `name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F
Class G Neat,15.8,8,12,150
Lightweight Pozzolan,12.5,14,18,135
High Density Tail,18.2,22,9,180
`

func TestParseCatalog(t *testing.T) {
	presets, err := ParseCatalog(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("Expected 3 presets, got %d", len(presets))
	}

	first := presets[0]
	if first.Name != "Class G Neat" {
		t.Errorf("Expected first preset 'Class G Neat', got %q", first.Name)
	}
	if first.DensityPPG != 15.8 || first.PlasticViscosity != 8 || first.YieldPoint != 12 || first.ReferenceBHCT != 150 {
		t.Errorf("Unexpected preset values: %+v", first)
	}
}

func TestParseCatalog_ExtraColumnsIgnored(t *testing.T) {
	csv := `name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F,vendor
Class G Neat,15.8,8,12,150,Acme
`
	presets, err := ParseCatalog(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("Expected 1 preset, got %d", len(presets))
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "empty input",
			csv:  "",
		},
		{
			name: "missing required column",
			csv:  "name,density_ppg\nClass G,15.8\n",
		},
		{
			name: "non-numeric density",
			csv:  "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\nClass G,heavy,8,12,150\n",
		},
		{
			name: "duplicate preset name",
			csv:  "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\nClass G,15.8,8,12,150\nClass G,16.0,9,11,150\n",
		},
		{
			name: "empty preset name",
			csv:  "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\n,15.8,8,12,150\n",
		},
		{
			name: "header only",
			csv:  "name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog(strings.NewReader(tt.csv)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slurries.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

func TestPresetCatalog_Get(t *testing.T) {
	path := writeCatalogFile(t, sampleCSV)
	catalog := NewPresetCatalog(path, cache.New(time.Minute))

	preset, err := catalog.Get("Lightweight Pozzolan")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if preset.DensityPPG != 12.5 {
		t.Errorf("Expected density 12.5, got %v", preset.DensityPPG)
	}
}

func TestPresetCatalog_UnknownPreset(t *testing.T) {
	path := writeCatalogFile(t, sampleCSV)
	catalog := NewPresetCatalog(path, cache.New(time.Minute))

	_, err := catalog.Get("Micro Cement")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetCatalog_CachesParsedCatalog(t *testing.T) {
	path := writeCatalogFile(t, sampleCSV)
	catalog := NewPresetCatalog(path, cache.New(time.Minute))

	if _, err := catalog.List(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Remove the file: the cached catalog must still serve
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove catalog file: %v", err)
	}
	presets, err := catalog.List()
	if err != nil {
		t.Fatalf("Expected cached catalog after file removal, got %v", err)
	}
	if len(presets) != 3 {
		t.Errorf("Expected 3 cached presets, got %d", len(presets))
	}
}

func TestPresetCatalog_MissingFile(t *testing.T) {
	catalog := NewPresetCatalog(filepath.Join(t.TempDir(), "missing.csv"), cache.New(time.Minute))

	if _, err := catalog.List(); err == nil {
		t.Error("Expected error for missing catalog file")
	}
}
