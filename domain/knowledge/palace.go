// Package knowledge holds the read-only Ziwei reference corpus: the twelve
// palaces, fourteen major stars, four transformations, auxiliary stars, and
// the interpretation rules matched against charts. Records are loaded once
// from a KnowledgeStore, validated, and served from an immutable snapshot.
package knowledge

import "fmt"

// Palace is one of the twelve life-area slots of a chart
type Palace struct {
	ID                 string   `json:"id" dynamodbav:"id"`
	Number             int      `json:"number" dynamodbav:"number"`
	Chinese            string   `json:"chinese" dynamodbav:"chinese"`
	English            string   `json:"english" dynamodbav:"english"`
	Meaning            string   `json:"meaning" dynamodbav:"meaning"`
	Governs            []string `json:"governs" dynamodbav:"governs"`
	PositiveIndicators string   `json:"positive_indicators" dynamodbav:"positive_indicators"`
	NegativeIndicators string   `json:"negative_indicators" dynamodbav:"negative_indicators"`
}

// Validate rejects malformed palace records at load time
func (p *Palace) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("palace: id is required")
	}
	if p.Number < 1 || p.Number > 12 {
		return fmt.Errorf("palace %s: number must be in 1..12, got %d", p.ID, p.Number)
	}
	if p.Chinese == "" || p.English == "" {
		return fmt.Errorf("palace %s: chinese and english names are required", p.ID)
	}
	if p.Meaning == "" {
		return fmt.Errorf("palace %s: meaning is required", p.ID)
	}
	return nil
}
