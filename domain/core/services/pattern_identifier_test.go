package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
)

func chartWith(bureau valueobjects.Bureau, lifeHouse int, stars ...string) *entities.Chart {
	positions := make(map[string][]string, len(stars))
	for _, star := range stars {
		positions[star] = []string{"命宮"}
	}
	return &entities.Chart{
		StarPositions:     positions,
		FiveElementBureau: bureau,
		LifeHouseIndex:    lifeHouse,
		Houses:            []entities.House{{Palace: "命宮", MajorStars: stars}},
	}
}

func TestPatternIdentifierSharedStars(t *testing.T) {
	identifier := NewPatternIdentifier()

	chart1 := chartWith(valueobjects.BureauWater, 0, "紫微", "天機")
	chart2 := chartWith(valueobjects.BureauWater, 3, "紫微", "太陰")

	patterns := identifier.Identify(chart1, chart2)

	assert.Equal(t, 1, patterns.SharedStarCount)
	assert.Contains(t, patterns.Harmonious, "Both have 紫微 (strong connection)")
	assert.False(t, patterns.SameLifeHouse)
}

func TestPatternIdentifierCombos(t *testing.T) {
	identifier := NewPatternIdentifier()

	t.Run("harmonious combo matches across charts", func(t *testing.T) {
		chart1 := chartWith(valueobjects.BureauWood, 0, "紫微")
		chart2 := chartWith(valueobjects.BureauFire, 0, "天府")

		patterns := identifier.Identify(chart1, chart2)
		assert.Contains(t, patterns.Harmonious, "紫微 + 天府 pattern (harmonious)")
	})

	t.Run("harmonious combo matches in reverse direction", func(t *testing.T) {
		chart1 := chartWith(valueobjects.BureauWood, 0, "天府")
		chart2 := chartWith(valueobjects.BureauFire, 0, "紫微")

		patterns := identifier.Identify(chart1, chart2)
		assert.Contains(t, patterns.Harmonious, "紫微 + 天府 pattern (harmonious)")
	})

	t.Run("conflicting combo is reported as challenging", func(t *testing.T) {
		chart1 := chartWith(valueobjects.BureauWood, 0, "七殺")
		chart2 := chartWith(valueobjects.BureauFire, 0, "破軍")

		patterns := identifier.Identify(chart1, chart2)
		assert.Contains(t, patterns.Conflicting, "七殺 + 破軍 pattern (challenging)")
	})
}

func TestPatternIdentifierFiveElement(t *testing.T) {
	identifier := NewPatternIdentifier()

	t.Run("same bureau is compatible", func(t *testing.T) {
		patterns := identifier.Identify(
			chartWith(valueobjects.BureauWater, 0, "紫微"),
			chartWith(valueobjects.BureauWater, 1, "天機"))

		assert.True(t, patterns.FiveElementCompatibility)
		assert.Contains(t, patterns.Harmonious,
			"Five Element: 水二局 (Water) + 水二局 (Water) (compatible)")
	})

	t.Run("generative neighbors are compatible both ways", func(t *testing.T) {
		forward := identifier.Identify(
			chartWith(valueobjects.BureauWood, 0, "紫微"),
			chartWith(valueobjects.BureauFire, 1, "天機"))
		backward := identifier.Identify(
			chartWith(valueobjects.BureauFire, 0, "紫微"),
			chartWith(valueobjects.BureauWood, 1, "天機"))

		assert.True(t, forward.FiveElementCompatibility)
		assert.True(t, backward.FiveElementCompatibility)
	})

	t.Run("incompatible bureaus land in the conflicting list", func(t *testing.T) {
		patterns := identifier.Identify(
			chartWith(valueobjects.BureauWater, 0, "紫微"),
			chartWith(valueobjects.BureauFire, 1, "天機"))

		assert.False(t, patterns.FiveElementCompatibility)
		assert.Contains(t, patterns.Conflicting,
			"Five Element: 水二局 (Water) + 火六局 (Fire) (needs work)")
	})
}

func TestPatternIdentifierOrdering(t *testing.T) {
	identifier := NewPatternIdentifier()

	chart1 := chartWith(valueobjects.BureauWater, 0, "紫微", "天府")
	chart2 := chartWith(valueobjects.BureauWater, 0, "紫微", "天府")

	patterns := identifier.Identify(chart1, chart2)

	// shared-star notes come first, then combos, then the five-element verdict
	require.GreaterOrEqual(t, len(patterns.Harmonious), 4)
	assert.Contains(t, patterns.Harmonious[0], "Both have")
	assert.Contains(t, patterns.Harmonious[len(patterns.Harmonious)-1], "Five Element:")
}
