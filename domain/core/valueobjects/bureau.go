package valueobjects

import "fmt"

// Bureau is the five-element bureau (五行局) classification of a chart,
// an integer in {2,3,4,5,6}.
type Bureau int

const (
	BureauWater Bureau = 2
	BureauWood  Bureau = 3
	BureauMetal Bureau = 4
	BureauEarth Bureau = 5
	BureauFire  Bureau = 6
)

// NewBureau validates and creates a Bureau
func NewBureau(n int) (Bureau, error) {
	b := Bureau(n)
	if !b.IsValid() {
		return 0, fmt.Errorf("five element bureau must be in 2..6, got %d", n)
	}
	return b, nil
}

// IsValid reports whether the bureau is one of the five known values
func (b Bureau) IsValid() bool {
	switch b {
	case BureauWater, BureauWood, BureauMetal, BureauEarth, BureauFire:
		return true
	}
	return false
}

// Name returns the traditional bureau name, e.g. 水二局
func (b Bureau) Name() string {
	switch b {
	case BureauWater:
		return "水二局"
	case BureauWood:
		return "木三局"
	case BureauMetal:
		return "金四局"
	case BureauEarth:
		return "土五局"
	case BureauFire:
		return "火六局"
	}
	return fmt.Sprintf("局%d", int(b))
}

// Element returns the English element name
func (b Bureau) Element() string {
	switch b {
	case BureauWater:
		return "Water"
	case BureauWood:
		return "Wood"
	case BureauMetal:
		return "Metal"
	case BureauEarth:
		return "Earth"
	case BureauFire:
		return "Fire"
	}
	return "Unknown"
}

// DisplayName returns the bureau name with the English element,
// e.g. "水二局 (Water)".
func (b Bureau) DisplayName() string {
	if !b.IsValid() {
		return fmt.Sprintf("Bureau %d", int(b))
	}
	return fmt.Sprintf("%s (%s)", b.Name(), b.Element())
}

// generates maps each element to the element it feeds in the generative
// cycle: Wood→Fire→Earth→Metal→Water→Wood.
var generates = map[Bureau]Bureau{
	BureauWood:  BureauFire,
	BureauFire:  BureauEarth,
	BureauEarth: BureauMetal,
	BureauMetal: BureauWater,
	BureauWater: BureauWood,
}

// HarmoniousWith reports whether two bureaus are compatible: identical
// elements always are, and adjacent elements of the generative cycle are
// in either direction. The relation is symmetric.
func (b Bureau) HarmoniousWith(other Bureau) bool {
	if !b.IsValid() || !other.IsValid() {
		return false
	}
	if b == other {
		return true
	}
	return generates[b] == other || generates[other] == b
}
