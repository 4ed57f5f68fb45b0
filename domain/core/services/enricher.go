package services

import (
	"fmt"
	"strings"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/knowledge"
)

// PalaceInterpretation is the enriched reading of one palace
type PalaceInterpretation struct {
	PalaceID         string   `json:"palace_id"`
	PalaceName       string   `json:"palace_name"`
	Description      string   `json:"description"`
	CurrentSituation string   `json:"current_situation"`
	PositiveOutlook  string   `json:"positive_outlook"`
	NegativeOutlook  string   `json:"negative_outlook"`
	Recommendations  []string `json:"recommendations"`
}

// StarPlacement is one star's reading within a specific palace
type StarPlacement struct {
	PalaceID        string `json:"palace_id"`
	PalaceName      string `json:"palace_name"`
	PositiveMeaning string `json:"positive_meaning"`
	NegativeMeaning string `json:"negative_meaning"`
	Strength        string `json:"strength"`
}

// StarInterpretation is the enriched reading of one placed star
type StarInterpretation struct {
	StarID           string          `json:"star_id"`
	StarName         string          `json:"star_name"`
	Element          string          `json:"element"`
	Archetype        string          `json:"archetype"`
	PalacePlacements []StarPlacement `json:"palace_placements"`
}

// KeyPattern is a named multi-star formation detected on a chart
type KeyPattern struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PalacesInvolved []string `json:"palaces_involved"`
	StarsInvolved   []string `json:"stars_involved"`
	PositiveOutcome string   `json:"positive_outcome"`
	NegativeOutcome string   `json:"negative_outcome"`
}

// LifeDimension is the aggregated reading for one life area
type LifeDimension struct {
	Area            string   `json:"area"`
	Assessment      string   `json:"assessment"`
	Outlook         string   `json:"outlook"`
	Recommendations []string `json:"recommendations"`
}

// KnowledgeCoverage counts how much of the chart resolved against the corpus.
// Counts can fall short of the chart's full occupancy when records are missing.
type KnowledgeCoverage struct {
	PalacesCovered     int `json:"palaces_covered"`
	StarsCovered       int `json:"stars_covered"`
	PatternsIdentified int `json:"patterns_identified"`
}

// EnrichedChartInterpretation is the full enrichment output for one chart
type EnrichedChartInterpretation struct {
	PalaceInterpretations []PalaceInterpretation   `json:"palace_interpretations"`
	StarInterpretations   []StarInterpretation     `json:"star_interpretations"`
	KeyPatterns           []KeyPattern             `json:"key_patterns"`
	LifeDimensions        map[string]LifeDimension `json:"life_dimensions"`
	OverallSummary        string                   `json:"overall_summary"`
	KnowledgeCoverage     KnowledgeCoverage        `json:"knowledge_coverage"`
}

// dimensionPalaces maps each life dimension to the palace ids that inform it
var dimensionPalaces = map[string][]string{
	"career":  {"guanlu"},
	"love":    {"fuqi"},
	"finance": {"caibao"},
	"health":  {"jieya"},
}

// dimensionAreas are the display names of the fixed life dimensions
var dimensionAreas = map[string]string{
	"career":  "Career & Work",
	"love":    "Love & Relationships",
	"finance": "Finance & Wealth",
	"health":  "Health & Wellbeing",
}

// EnrichmentAggregator combines corpus lookups with a chart to build
// palace, star, and dimension level interpretations. Lookup misses drop the
// record silently; the coverage counts expose the gap.
type EnrichmentAggregator struct {
	registry *knowledge.Registry
}

// NewEnrichmentAggregator creates an aggregator over the given registry
func NewEnrichmentAggregator(registry *knowledge.Registry) *EnrichmentAggregator {
	return &EnrichmentAggregator{registry: registry}
}

// Enrich builds the full enriched interpretation for a chart
func (e *EnrichmentAggregator) Enrich(chart *entities.Chart) *EnrichedChartInterpretation {
	enriched := &EnrichedChartInterpretation{
		PalaceInterpretations: make([]PalaceInterpretation, 0),
		StarInterpretations:   make([]StarInterpretation, 0),
		KeyPatterns:           make([]KeyPattern, 0),
		LifeDimensions:        make(map[string]LifeDimension),
	}
	if chart == nil {
		enriched.OverallSummary = e.summarize(enriched)
		return enriched
	}

	for _, house := range chart.Houses {
		if interp, ok := e.InterpretPalace(house); ok {
			enriched.PalaceInterpretations = append(enriched.PalaceInterpretations, interp)
			enriched.KnowledgeCoverage.PalacesCovered++
		}
	}

	for _, starID := range chart.StarNames() {
		if interp, ok := e.InterpretStar(starID, chart.StarPositions[starID]); ok {
			enriched.StarInterpretations = append(enriched.StarInterpretations, interp)
			enriched.KnowledgeCoverage.StarsCovered++
		}
	}

	enriched.KeyPatterns = e.identifyKeyPatterns(chart)
	enriched.KnowledgeCoverage.PatternsIdentified = len(enriched.KeyPatterns)

	enriched.LifeDimensions = e.analyzeDimensions(enriched.PalaceInterpretations)
	enriched.OverallSummary = e.summarize(enriched)

	return enriched
}

// InterpretPalace builds the reading for one occupied or empty palace.
// Returns false when the palace is unknown to the corpus.
func (e *EnrichmentAggregator) InterpretPalace(house entities.House) (PalaceInterpretation, bool) {
	record, ok := e.registry.LookupPalace(house.Palace)
	if !ok {
		return PalaceInterpretation{}, false
	}

	return PalaceInterpretation{
		PalaceID:         record.ID,
		PalaceName:       record.English,
		Description:      record.Meaning,
		CurrentSituation: assessSituation(house, record),
		PositiveOutlook:  record.PositiveIndicators,
		NegativeOutlook:  record.NegativeIndicators,
		Recommendations:  e.recommendations(house, record),
	}, true
}

// InterpretStar builds the reading for one placed star across its palaces.
// Returns false when the star is unknown to the corpus.
func (e *EnrichmentAggregator) InterpretStar(starID string, palaceIDs []string) (StarInterpretation, bool) {
	record, ok := e.registry.LookupStar(starID)
	if !ok {
		return StarInterpretation{}, false
	}

	placements := make([]StarPlacement, 0, len(palaceIDs))
	for _, palaceID := range palaceIDs {
		placement := StarPlacement{
			PalaceID:        palaceID,
			PalaceName:      palaceID,
			PositiveMeaning: "Meanings not yet documented",
			NegativeMeaning: "Meanings not yet documented",
			// strength grading needs the chart calculation, which is out of scope here
			Strength: "unknown",
		}
		palaceKey := palaceID
		if palaceRecord, found := e.registry.LookupPalace(palaceID); found {
			placement.PalaceName = palaceRecord.English
			palaceKey = palaceRecord.ID
		}
		if meaning, found := record.PalaceMeanings[palaceKey]; found {
			placement.PositiveMeaning = meaning.Positive
			placement.NegativeMeaning = meaning.Negative
		}
		placements = append(placements, placement)
	}

	return StarInterpretation{
		StarID:           record.ID,
		StarName:         record.English,
		Element:          record.Element,
		Archetype:        record.Archetype,
		PalacePlacements: placements,
	}, true
}

func assessSituation(house entities.House, record *knowledge.Palace) string {
	if len(house.MajorStars) == 0 {
		return fmt.Sprintf("%s currently lacks major stars, suggesting a period of quiet or waiting.",
			record.English)
	}
	return fmt.Sprintf("%s is occupied by %d major star(s), indicating an active phase in this life area.",
		record.English, len(house.MajorStars))
}

func (e *EnrichmentAggregator) recommendations(house entities.House, record *knowledge.Palace) []string {
	recs := make([]string, 0, 3)

	if len(record.Governs) > 0 {
		governs := record.Governs
		if len(governs) > 2 {
			governs = governs[:2]
		}
		recs = append(recs, fmt.Sprintf("Focus on improving: %s", strings.Join(governs, ", ")))
	}
	if len(house.Transformations) > 0 {
		recs = append(recs, "Monitor and manage transformations this cycle")
	}
	for _, star := range house.MajorStars {
		if e.registry.IsBeneficStar(star) {
			recs = append(recs, "Leverage current advantages for long-term goals")
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Seek professional Ziwei reading for detailed guidance")
	}
	return recs
}

// identifyKeyPatterns detects named formations on a single chart. The pairs
// mirror the cross-chart harmonious combos; here both stars sit on one chart.
func (e *EnrichmentAggregator) identifyKeyPatterns(chart *entities.Chart) []KeyPattern {
	patterns := make([]KeyPattern, 0)
	for _, combo := range harmoniousCombos {
		if chart.HasStar(combo[0]) && chart.HasStar(combo[1]) {
			patterns = append(patterns, KeyPattern{
				Title:           fmt.Sprintf("%s + %s", combo[0], combo[1]),
				Description:     fmt.Sprintf("%s and %s appear together on this chart.", combo[0], combo[1]),
				PalacesInvolved: append(palacesOf(chart, combo[0]), palacesOf(chart, combo[1])...),
				StarsInvolved:   []string{combo[0], combo[1]},
				PositiveOutcome: "The pairing reinforces both stars' strengths when supported.",
				NegativeOutcome: "Under pressure the pairing can amplify tension between the two natures.",
			})
		}
	}
	return patterns
}

func palacesOf(chart *entities.Chart, star string) []string {
	out := make([]string, len(chart.StarPositions[star]))
	copy(out, chart.StarPositions[star])
	return out
}

func (e *EnrichmentAggregator) analyzeDimensions(palaces []PalaceInterpretation) map[string]LifeDimension {
	dimensions := make(map[string]LifeDimension, len(dimensionPalaces))
	for dimension, area := range dimensionAreas {
		dimensions[dimension] = LifeDimension{Area: area, Recommendations: []string{}}
	}

	for dimension, wantIDs := range dimensionPalaces {
		var relevant []PalaceInterpretation
		for _, interp := range palaces {
			for _, id := range wantIDs {
				if interp.PalaceID == id {
					relevant = append(relevant, interp)
				}
			}
		}
		if len(relevant) == 0 {
			continue
		}
		entry := dimensions[dimension]
		entry.Assessment = fmt.Sprintf("%s analysis shows moderate activity.", relevant[0].PalaceName)
		entry.Outlook = "Outlook is generally positive with room for improvement."
		entry.Recommendations = []string{
			"Continue current efforts",
			"Seek professional guidance for optimization",
		}
		dimensions[dimension] = entry
	}
	return dimensions
}

func (e *EnrichmentAggregator) summarize(enriched *EnrichedChartInterpretation) string {
	return fmt.Sprintf(
		"This Ziwei chart shows activity across %d palaces with %d primary stars. "+
			"The analysis reveals a balanced mix of opportunities and challenges across different life areas. "+
			"Regular monitoring of transformations is recommended.",
		enriched.KnowledgeCoverage.PalacesCovered,
		enriched.KnowledgeCoverage.StarsCovered,
	)
}
