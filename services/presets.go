// ABOUTME: Slurry preset catalog loaded from a CSV table
// ABOUTME: TTL-cached with singleflight so concurrent requests share one read

package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/alexandroood/cementing-hydraulics/cache"
	"github.com/alexandroood/cementing-hydraulics/models"
)

// ErrUnknownPreset indicates a job request named a slurry not in the catalog.
var ErrUnknownPreset = errors.New("unknown slurry preset")

const catalogCacheKey = "presets:catalog"

// requiredColumns are the CSV header fields the catalog must carry.
// Extra columns are ignored.
var requiredColumns = []string{"name", "density_ppg", "plastic_viscosity_cP", "yield_point_lb100ft2", "BHCT_F"}

// PresetCatalog serves slurry presets from a CSV file. Parsed catalogs are
// cached with a TTL; expired entries trigger a re-read of the file, deduped
// across concurrent requests with singleflight.
type PresetCatalog struct {
	path    string
	cache   *cache.Cache
	sfGroup singleflight.Group
}

// NewPresetCatalog creates a catalog backed by the CSV file at path.
func NewPresetCatalog(path string, c *cache.Cache) *PresetCatalog {
	return &PresetCatalog{
		path:  path,
		cache: c,
	}
}

// Source returns the catalog file path.
func (pc *PresetCatalog) Source() string {
	return pc.path
}

// List returns all presets in catalog order.
func (pc *PresetCatalog) List() ([]models.SlurryPreset, error) {
	if cached, found := pc.cache.Get(catalogCacheKey); found {
		return cached.([]models.SlurryPreset), nil
	}

	// Only one goroutine reads the file; the rest share its result.
	v, err, _ := pc.sfGroup.Do(catalogCacheKey, func() (interface{}, error) {
		presets, err := pc.load()
		if err != nil {
			return nil, err
		}
		pc.cache.Set(catalogCacheKey, presets)
		return presets, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.SlurryPreset), nil
}

// Get returns the preset with the given name.
func (pc *PresetCatalog) Get(name string) (models.SlurryPreset, error) {
	presets, err := pc.List()
	if err != nil {
		return models.SlurryPreset{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return models.SlurryPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// load reads and parses the catalog file.
func (pc *PresetCatalog) load() ([]models.SlurryPreset, error) {
	f, err := os.Open(pc.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset catalog: %w", err)
	}
	defer f.Close()

	presets, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset catalog %s: %w", pc.path, err)
	}
	return presets, nil
}

// ParseCatalog parses a slurry catalog from CSV. The header row is required
// and must contain the five slurry columns; rows with non-numeric values or
// duplicate names are rejected.
func ParseCatalog(r io.Reader) ([]models.SlurryPreset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog missing required column %q", required)
		}
	}

	var presets []models.SlurryPreset
	seen := make(map[string]bool)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		name := record[cols["name"]]
		if name == "" {
			return nil, fmt.Errorf("line %d: preset name cannot be empty", line)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate preset name %q", line, name)
		}
		seen[name] = true

		preset := models.SlurryPreset{Name: name}
		for _, field := range []struct {
			column string
			dst    *float64
		}{
			{"density_ppg", &preset.DensityPPG},
			{"plastic_viscosity_cP", &preset.PlasticViscosity},
			{"yield_point_lb100ft2", &preset.YieldPoint},
			{"BHCT_F", &preset.ReferenceBHCT},
		} {
			value, err := strconv.ParseFloat(record[cols[field.column]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s value %q", line, field.column, record[cols[field.column]])
			}
			*field.dst = value
		}

		presets = append(presets, preset)
	}

	if len(presets) == 0 {
		return nil, fmt.Errorf("catalog has no preset rows")
	}
	return presets, nil
}
