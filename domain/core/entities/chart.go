package entities

import (
	"sort"

	"ziwei-backend/domain/core/valueobjects"
)

// House is one palace slot of a chart with its occupancy
type House struct {
	Palace          string   `json:"palace" dynamodbav:"palace"`
	MajorStars      []string `json:"majorStars" dynamodbav:"majorStars"`
	Transformations []string `json:"transformations,omitempty" dynamodbav:"transformations,omitempty"`
}

// Chart is a fully computed Ziwei birth chart as supplied by the chart
// provider. It is treated as read-only input; nothing here mutates it.
type Chart struct {
	// StarPositions maps a major star name to the palaces it occupies.
	StarPositions map[string][]string `json:"starPositions" dynamodbav:"starPositions"`

	// FiveElementBureau is the 五行局 classification, 2..6.
	FiveElementBureau valueobjects.Bureau `json:"fiveElementBureau" dynamodbav:"fiveElementBureau"`

	// LifeHouseIndex is the index of the life palace (命宮).
	LifeHouseIndex int `json:"lifeHouseIndex" dynamodbav:"lifeHouseIndex"`

	// BaseFourTransformations maps a transformation kind to the star it
	// attaches to for this chart's birth stem.
	BaseFourTransformations map[string]string `json:"baseFourTransformations,omitempty" dynamodbav:"baseFourTransformations,omitempty"`

	// Houses is the ordered palace sequence with occupancy.
	Houses []House `json:"houses,omitempty" dynamodbav:"houses,omitempty"`
}

// HasChartData reports whether the chart carries enough structure to
// interpret. Charts without houses or star positions degrade to placeholder
// text rather than failing.
func (c *Chart) HasChartData() bool {
	return c != nil && len(c.Houses) > 0 && len(c.StarPositions) > 0
}

// StarNames returns the placed star names in deterministic order
func (c *Chart) StarNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.StarPositions))
	for star := range c.StarPositions {
		names = append(names, star)
	}
	sort.Strings(names)
	return names
}

// HasStar reports whether the named star is placed anywhere on the chart
func (c *Chart) HasStar(star string) bool {
	if c == nil {
		return false
	}
	_, ok := c.StarPositions[star]
	return ok
}

// StarInPalace reports whether the named star occupies the named palace
func (c *Chart) StarInPalace(star, palace string) bool {
	if c == nil {
		return false
	}
	for _, p := range c.StarPositions[star] {
		if p == palace {
			return true
		}
	}
	return false
}

// SharedStars returns the stars placed on both charts, in deterministic order
func (c *Chart) SharedStars(other *Chart) []string {
	if c == nil || other == nil {
		return nil
	}
	var shared []string
	for _, star := range c.StarNames() {
		if other.HasStar(star) {
			shared = append(shared, star)
		}
	}
	return shared
}

// ActiveTransformations returns every transformation marked on any house,
// in house order, without duplicates.
func (c *Chart) ActiveTransformations() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var active []string
	for _, house := range c.Houses {
		for _, t := range house.Transformations {
			if !seen[t] {
				seen[t] = true
				active = append(active, t)
			}
		}
	}
	return active
}

// HasTransformation reports whether the transformation is active anywhere
func (c *Chart) HasTransformation(kind string) bool {
	for _, t := range c.ActiveTransformations() {
		if t == kind {
			return true
		}
	}
	return false
}

// OccupiedHouses returns the houses that hold at least one major star,
// preserving house order.
func (c *Chart) OccupiedHouses() []House {
	if c == nil {
		return nil
	}
	var occupied []House
	for _, house := range c.Houses {
		if len(house.MajorStars) > 0 {
			occupied = append(occupied, house)
		}
	}
	return occupied
}
