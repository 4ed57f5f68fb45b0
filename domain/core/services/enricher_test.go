package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/core/entities"
)

func TestEnrichmentAggregatorEnrich(t *testing.T) {
	enricher := NewEnrichmentAggregator(loadedRegistry(t))
	enriched := enricher.Enrich(testChart())

	t.Run("covers only palaces known to the corpus", func(t *testing.T) {
		// 兄弟宮 is not in the corpus and is silently skipped
		assert.Equal(t, 3, enriched.KnowledgeCoverage.PalacesCovered)
		assert.Len(t, enriched.PalaceInterpretations, 3)
	})

	t.Run("covers all known stars", func(t *testing.T) {
		assert.Equal(t, 3, enriched.KnowledgeCoverage.StarsCovered)
		assert.Len(t, enriched.StarInterpretations, 3)
	})

	t.Run("summary reflects the coverage counts", func(t *testing.T) {
		assert.Equal(t,
			"This Ziwei chart shows activity across 3 palaces with 3 primary stars. "+
				"The analysis reveals a balanced mix of opportunities and challenges across different life areas. "+
				"Regular monitoring of transformations is recommended.",
			enriched.OverallSummary)
	})

	t.Run("life dimensions use the fixed palace mapping", func(t *testing.T) {
		require.Contains(t, enriched.LifeDimensions, "career")
		require.Contains(t, enriched.LifeDimensions, "love")
		require.Contains(t, enriched.LifeDimensions, "finance")
		require.Contains(t, enriched.LifeDimensions, "health")

		career := enriched.LifeDimensions["career"]
		assert.Equal(t, "Career & Work", career.Area)
		assert.Equal(t, "Career Palace analysis shows moderate activity.", career.Assessment)

		love := enriched.LifeDimensions["love"]
		assert.Equal(t, "Marriage Palace analysis shows moderate activity.", love.Assessment)

		// no wealth palace on the chart, so finance stays empty
		assert.Empty(t, enriched.LifeDimensions["finance"].Assessment)
	})
}

func TestInterpretPalace(t *testing.T) {
	enricher := NewEnrichmentAggregator(loadedRegistry(t))

	t.Run("occupied palace", func(t *testing.T) {
		interp, ok := enricher.InterpretPalace(entities.House{
			Palace:          "命宮",
			MajorStars:      []string{"紫微"},
			Transformations: []string{"祿"},
		})
		require.True(t, ok)

		assert.Equal(t, "ming", interp.PalaceID)
		assert.Equal(t, "Life Palace", interp.PalaceName)
		assert.Equal(t, "Core destiny and personality", interp.Description)
		assert.Equal(t,
			"Life Palace is occupied by 1 major star(s), indicating an active phase in this life area.",
			interp.CurrentSituation)
		assert.Contains(t, interp.Recommendations, "Focus on improving: personality, destiny")
		assert.Contains(t, interp.Recommendations, "Monitor and manage transformations this cycle")
		assert.Contains(t, interp.Recommendations, "Leverage current advantages for long-term goals")
	})

	t.Run("empty palace", func(t *testing.T) {
		interp, ok := enricher.InterpretPalace(entities.House{Palace: "夫妻宮"})
		require.True(t, ok)
		assert.Equal(t,
			"Marriage Palace currently lacks major stars, suggesting a period of quiet or waiting.",
			interp.CurrentSituation)
	})

	t.Run("unknown palace misses without error", func(t *testing.T) {
		_, ok := enricher.InterpretPalace(entities.House{Palace: "未知宮"})
		assert.False(t, ok)
	})

	t.Run("fallback recommendation when nothing applies", func(t *testing.T) {
		corpus := testCorpus()
		corpus.palaces[1].Governs = nil
		enricherSparse := NewEnrichmentAggregator(registryFrom(t, corpus))

		interp, ok := enricherSparse.InterpretPalace(entities.House{Palace: "夫妻宮"})
		require.True(t, ok)
		assert.Equal(t, []string{"Seek professional Ziwei reading for detailed guidance"},
			interp.Recommendations)
	})
}

func TestInterpretStar(t *testing.T) {
	enricher := NewEnrichmentAggregator(loadedRegistry(t))

	t.Run("documented placement", func(t *testing.T) {
		interp, ok := enricher.InterpretStar("紫微", []string{"命宮"})
		require.True(t, ok)

		assert.Equal(t, "ziwei", interp.StarID)
		assert.Equal(t, "Emperor Star", interp.StarName)
		require.Len(t, interp.PalacePlacements, 1)
		assert.Equal(t, "Life Palace", interp.PalacePlacements[0].PalaceName)
		assert.Equal(t, "Natural leadership", interp.PalacePlacements[0].PositiveMeaning)
		assert.Equal(t, "Arrogance", interp.PalacePlacements[0].NegativeMeaning)
	})

	t.Run("undocumented placement uses the placeholder", func(t *testing.T) {
		interp, ok := enricher.InterpretStar("天府", []string{"夫妻宮"})
		require.True(t, ok)
		require.Len(t, interp.PalacePlacements, 1)
		assert.Equal(t, "Meanings not yet documented", interp.PalacePlacements[0].PositiveMeaning)
		assert.Equal(t, "Meanings not yet documented", interp.PalacePlacements[0].NegativeMeaning)
	})

	t.Run("unknown star misses without error", func(t *testing.T) {
		_, ok := enricher.InterpretStar("未知星", []string{"命宮"})
		assert.False(t, ok)
	})
}

func TestEnrichNilAndEmptyChart(t *testing.T) {
	enricher := NewEnrichmentAggregator(loadedRegistry(t))

	t.Run("nil chart yields empty enrichment", func(t *testing.T) {
		enriched := enricher.Enrich(nil)
		assert.Empty(t, enriched.PalaceInterpretations)
		assert.Empty(t, enriched.StarInterpretations)
		assert.Equal(t, 0, enriched.KnowledgeCoverage.PalacesCovered)
		assert.NotEmpty(t, enriched.OverallSummary)
	})

	t.Run("pattern detection counts co-present pairs", func(t *testing.T) {
		chart := testChart()
		enriched := enricher.Enrich(chart)
		// 紫微 and 天府 both placed
		require.Equal(t, 1, enriched.KnowledgeCoverage.PatternsIdentified)
		assert.Equal(t, "紫微 + 天府", enriched.KeyPatterns[0].Title)
	})
}
