package services

import (
	"fmt"

	"ziwei-backend/domain/core/entities"
)

// harmoniousCombos are the cross-chart star pairings held to support a
// relationship. Either chart may hold either side of a pair.
var harmoniousCombos = [][2]string{
	{"紫微", "天府"},
	{"天機", "太陽"},
	{"武曲", "天相"},
	{"太陰", "天梁"},
	{"貪狼", "巨門"},
}

// conflictingCombos are the cross-chart pairings held to create friction
var conflictingCombos = [][2]string{
	{"七殺", "破軍"},
	{"火星", "鈴星"},
	{"天刑", "天羅"},
	{"擎羊", "陀羅"},
}

// CompatibilityPatterns is the pattern analysis of two charts. The element
// lists are human-readable and ordered: shared stars first, then star combos,
// then the five-element verdict.
type CompatibilityPatterns struct {
	Harmonious               []string `json:"harmonious"`
	Conflicting              []string `json:"conflicting"`
	FiveElementCompatibility bool     `json:"fiveElementCompatibility"`
	SharedStarCount          int      `json:"sharedStarCount"`
	SameLifeHouse            bool     `json:"sameLifeHouse"`
}

// PatternIdentifier finds harmonious and conflicting relationships between
// two charts. Pure function of the two charts' star sets and bureaus.
type PatternIdentifier struct{}

// NewPatternIdentifier creates a pattern identifier
func NewPatternIdentifier() *PatternIdentifier {
	return &PatternIdentifier{}
}

// Identify computes the pattern analysis for a chart pair
func (p *PatternIdentifier) Identify(chart1, chart2 *entities.Chart) *CompatibilityPatterns {
	patterns := &CompatibilityPatterns{
		Harmonious:  make([]string, 0),
		Conflicting: make([]string, 0),
	}

	shared := chart1.SharedStars(chart2)
	patterns.SharedStarCount = len(shared)
	for _, star := range shared {
		patterns.Harmonious = append(patterns.Harmonious,
			fmt.Sprintf("Both have %s (strong connection)", star))
	}

	for _, combo := range harmoniousCombos {
		if crossMatch(chart1, chart2, combo) {
			patterns.Harmonious = append(patterns.Harmonious,
				fmt.Sprintf("%s + %s pattern (harmonious)", combo[0], combo[1]))
		}
	}

	for _, combo := range conflictingCombos {
		if crossMatch(chart1, chart2, combo) {
			patterns.Conflicting = append(patterns.Conflicting,
				fmt.Sprintf("%s + %s pattern (challenging)", combo[0], combo[1]))
		}
	}

	b1, b2 := chart1.FiveElementBureau, chart2.FiveElementBureau
	patterns.FiveElementCompatibility = b1.HarmoniousWith(b2)
	verdict := "needs work"
	if patterns.FiveElementCompatibility {
		verdict = "compatible"
	}
	note := fmt.Sprintf("Five Element: %s + %s (%s)", b1.DisplayName(), b2.DisplayName(), verdict)
	if patterns.FiveElementCompatibility {
		patterns.Harmonious = append(patterns.Harmonious, note)
	} else {
		patterns.Conflicting = append(patterns.Conflicting, note)
	}

	patterns.SameLifeHouse = chart1.LifeHouseIndex == chart2.LifeHouseIndex

	return patterns
}

// crossMatch reports whether the two charts hold the two combo stars between
// them, in either direction.
func crossMatch(chart1, chart2 *entities.Chart, combo [2]string) bool {
	return (chart1.HasStar(combo[0]) && chart2.HasStar(combo[1])) ||
		(chart1.HasStar(combo[1]) && chart2.HasStar(combo[0]))
}
