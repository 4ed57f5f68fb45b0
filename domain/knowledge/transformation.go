package knowledge

import "fmt"

// Transformation is one of the four transformations (四化): 祿, 權, 科, 忌
type Transformation struct {
	ID               string   `json:"id" dynamodbav:"id"`
	Number           int      `json:"number" dynamodbav:"number"`
	Chinese          string   `json:"chinese" dynamodbav:"chinese"`
	Pinyin           string   `json:"pinyin" dynamodbav:"pinyin"`
	English          string   `json:"english" dynamodbav:"english"`
	Meaning          string   `json:"meaning" dynamodbav:"meaning"`
	CharacterMeaning string   `json:"character_meaning" dynamodbav:"character_meaning"`
	Effects          string   `json:"effects" dynamodbav:"effects"`
	PositiveEffects  []string `json:"positive_effects" dynamodbav:"positive_effects"`
	NegativeEffects  []string `json:"negative_effects" dynamodbav:"negative_effects"`
	BestWith         []string `json:"best_with" dynamodbav:"best_with"`
	Interpretation   string   `json:"interpretation" dynamodbav:"interpretation"`
}

// Kind returns the single transformation character, e.g. 祿 from 祿化
func (t *Transformation) Kind() string {
	runes := []rune(t.Chinese)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0])
}

// Validate rejects malformed transformation records at load time
func (t *Transformation) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transformation: id is required")
	}
	if t.Number < 1 || t.Number > 4 {
		return fmt.Errorf("transformation %s: number must be in 1..4, got %d", t.ID, t.Number)
	}
	if t.Chinese == "" || t.English == "" {
		return fmt.Errorf("transformation %s: chinese and english names are required", t.ID)
	}
	return nil
}
