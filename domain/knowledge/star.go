package knowledge

import "fmt"

// PalaceMeaning is a star's documented reading for one palace placement.
// The map of meanings on a star may cover only a subset of the twelve
// palaces; missing entries are valid and degrade to placeholder text.
type PalaceMeaning struct {
	Positive string `json:"positive" dynamodbav:"positive"`
	Negative string `json:"negative" dynamodbav:"negative"`
}

// Star is one of the fourteen major stars
type Star struct {
	ID             string                   `json:"id" dynamodbav:"id"`
	Number         int                      `json:"number" dynamodbav:"number"`
	Chinese        string                   `json:"chinese" dynamodbav:"chinese"`
	English        string                   `json:"english" dynamodbav:"english"`
	Meaning        string                   `json:"meaning" dynamodbav:"meaning"`
	Element        string                   `json:"element" dynamodbav:"element"`
	Archetype      string                   `json:"archetype" dynamodbav:"archetype"`
	GeneralNature  string                   `json:"general_nature" dynamodbav:"general_nature"`
	KeyTraits      []string                 `json:"key_traits" dynamodbav:"key_traits"`
	PalaceMeanings map[string]PalaceMeaning `json:"palace_meanings" dynamodbav:"palace_meanings"`
}

// Validate rejects malformed star records at load time
func (s *Star) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("star: id is required")
	}
	if s.Number < 1 || s.Number > 14 {
		return fmt.Errorf("star %s: number must be in 1..14, got %d", s.ID, s.Number)
	}
	if s.Chinese == "" || s.English == "" {
		return fmt.Errorf("star %s: chinese and english names are required", s.ID)
	}
	if s.Element == "" {
		return fmt.Errorf("star %s: element is required", s.ID)
	}
	for palaceID, meaning := range s.PalaceMeanings {
		if palaceID == "" {
			return fmt.Errorf("star %s: palace meaning with empty palace id", s.ID)
		}
		if meaning.Positive == "" && meaning.Negative == "" {
			return fmt.Errorf("star %s: empty palace meaning for %s", s.ID, palaceID)
		}
	}
	return nil
}
