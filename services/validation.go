// ABOUTME: Input validation for well configurations with typed failures
// ABOUTME: Geometry and depth-range violations are errors; rate degeneracy is not

package services

import (
	"errors"
	"fmt"

	"github.com/alexandroood/cementing-hydraulics/models"
)

// ErrInvalidGeometry indicates the casing OD meets or exceeds the hole
// diameter, which would produce a non-positive annulus area.
var ErrInvalidGeometry = errors.New("invalid annulus geometry")

// ErrInvalidDepthRange indicates the top of cement is at or below total
// depth, or the total depth itself is not usable.
var ErrInvalidDepthRange = errors.New("invalid depth range")

// ValidateWellConfiguration checks the invariants the calculator relies on.
// Violations are unrecoverable for the requested computation and surface as
// wrapped sentinel errors. A pump rate <= 0 is deliberately NOT an error:
// it degrades pump time to 0 and the summary still renders.
func ValidateWellConfiguration(well models.WellConfiguration) error {
	if well.CasingODIn <= 0 {
		return fmt.Errorf("%w: casing OD must be positive, got %.2f in", ErrInvalidGeometry, well.CasingODIn)
	}
	if well.CasingODIn >= well.HoleDiameterIn {
		return fmt.Errorf("%w: casing OD %.2f in must be smaller than hole diameter %.2f in",
			ErrInvalidGeometry, well.CasingODIn, well.HoleDiameterIn)
	}
	if well.TotalDepthFt < 1 {
		return fmt.Errorf("%w: total depth must be at least 1 ft, got %.0f", ErrInvalidDepthRange, well.TotalDepthFt)
	}
	if well.TopOfCementFt < 0 {
		return fmt.Errorf("%w: top of cement cannot be negative, got %.0f ft", ErrInvalidDepthRange, well.TopOfCementFt)
	}
	if well.TopOfCementFt >= well.TotalDepthFt {
		return fmt.Errorf("%w: top of cement %.0f ft must be above total depth %.0f ft",
			ErrInvalidDepthRange, well.TopOfCementFt, well.TotalDepthFt)
	}
	return nil
}
