package validators

import (
	"fmt"

	"ziwei-backend/domain/core/entities"
	appErrors "ziwei-backend/pkg/errors"
)

// ChartValidator checks the mechanical consistency of an incoming chart.
// It validates structure only, never astrological correctness.
type ChartValidator struct{}

// NewChartValidator creates a chart validator
func NewChartValidator() *ChartValidator {
	return &ChartValidator{}
}

// Validate rejects charts that cannot be interpreted at all. Partial charts
// (missing houses, sparse star positions) pass and degrade downstream.
func (v *ChartValidator) Validate(chart *entities.Chart) error {
	if chart == nil {
		return appErrors.NewValidationError("chart is required")
	}

	if !chart.FiveElementBureau.IsValid() {
		return appErrors.NewValidationError(
			fmt.Sprintf("fiveElementBureau must be in 2..6, got %d", int(chart.FiveElementBureau)))
	}

	if chart.LifeHouseIndex < 0 {
		return appErrors.NewValidationError("lifeHouseIndex must be non-negative")
	}

	for star, palaces := range chart.StarPositions {
		if star == "" {
			return appErrors.NewValidationError("starPositions contains an empty star name")
		}
		if len(palaces) == 0 {
			return appErrors.NewValidationError(
				fmt.Sprintf("star %s must occupy at least one palace", star))
		}
		for _, palace := range palaces {
			if palace == "" {
				return appErrors.NewValidationError(
					fmt.Sprintf("star %s references an empty palace name", star))
			}
		}
	}

	for i, house := range chart.Houses {
		if house.Palace == "" {
			return appErrors.NewValidationError(fmt.Sprintf("house %d has no palace name", i))
		}
	}

	return nil
}

// ValidatePair validates both charts of a compatibility request
func (v *ChartValidator) ValidatePair(chart1, chart2 *entities.Chart) error {
	if err := v.Validate(chart1); err != nil {
		return appErrors.Wrap(err, "chart1")
	}
	if err := v.Validate(chart2); err != nil {
		return appErrors.Wrap(err, "chart2")
	}
	return nil
}
