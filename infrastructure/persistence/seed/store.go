// Package seed embeds the Zhongzhou School reference corpus as Go data so the
// service can start with zero external dependencies. The same records back the
// DynamoDB seeding command, so both knowledge sources serve identical content.
package seed

import (
	"context"

	"ziwei-backend/domain/knowledge"
)

// Store serves the embedded corpus. It satisfies knowledge.KnowledgeStore and
// never fails; errors exist only to match the interface the DynamoDB store
// also implements.
type Store struct{}

// NewStore returns a store over the embedded corpus
func NewStore() *Store {
	return &Store{}
}

// GetAllPalaces returns the twelve palaces
func (s *Store) GetAllPalaces(ctx context.Context) ([]knowledge.Palace, error) {
	out := make([]knowledge.Palace, len(palaces))
	copy(out, palaces)
	return out, nil
}

// GetAllStars returns the fourteen major stars
func (s *Store) GetAllStars(ctx context.Context) ([]knowledge.Star, error) {
	out := make([]knowledge.Star, len(stars))
	copy(out, stars)
	return out, nil
}

// GetAllTransformations returns the four transformations
func (s *Store) GetAllTransformations(ctx context.Context) ([]knowledge.Transformation, error) {
	out := make([]knowledge.Transformation, len(transformations))
	copy(out, transformations)
	return out, nil
}

// GetBeneficStars returns the auxiliary benefic stars
func (s *Store) GetBeneficStars(ctx context.Context) ([]knowledge.BeneficStar, error) {
	out := make([]knowledge.BeneficStar, len(beneficStars))
	copy(out, beneficStars)
	return out, nil
}

// GetMaleficStars returns the auxiliary malefic stars
func (s *Store) GetMaleficStars(ctx context.Context) ([]knowledge.MaleficStar, error) {
	out := make([]knowledge.MaleficStar, len(maleficStars))
	copy(out, maleficStars)
	return out, nil
}

// GetRules returns the interpretation rules in declaration order
func (s *Store) GetRules(ctx context.Context) ([]knowledge.Rule, error) {
	out := make([]knowledge.Rule, len(rules))
	copy(out, rules)
	return out, nil
}
