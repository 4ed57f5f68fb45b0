package knowledge

import (
	"context"
	"fmt"
	"sync/atomic"
)

// KnowledgeStore loads the static corpus from a backing source. Implementations
// live in infrastructure; the embedded seed and DynamoDB stores both satisfy it.
type KnowledgeStore interface {
	GetAllPalaces(ctx context.Context) ([]Palace, error)
	GetAllStars(ctx context.Context) ([]Star, error)
	GetAllTransformations(ctx context.Context) ([]Transformation, error)
	GetBeneficStars(ctx context.Context) ([]BeneficStar, error)
	GetMaleficStars(ctx context.Context) ([]MaleficStar, error)
	GetRules(ctx context.Context) ([]Rule, error)
}

// snapshot is an immutable view of the loaded corpus. Lookups index records
// both by id and by Chinese name because chart payloads carry Chinese names
// while the corpus is keyed by romanized ids.
type snapshot struct {
	palaces         []Palace
	stars           []Star
	transformations []Transformation
	benefic         []BeneficStar
	malefic         []MaleficStar
	rules           []Rule

	palaceIndex         map[string]*Palace
	starIndex           map[string]*Star
	transformationIndex map[string]*Transformation
	beneficIndex        map[string]*BeneficStar
	maleficIndex        map[string]*MaleficStar
}

// Counts summarizes how many records of each kind are loaded.
type Counts struct {
	Palaces         int `json:"palaces"`
	Stars           int `json:"stars"`
	Transformations int `json:"transformations"`
	BeneficStars    int `json:"benefic_stars"`
	MaleficStars    int `json:"malefic_stars"`
	Rules           int `json:"rules"`
}

// Registry holds the active corpus snapshot. Load swaps the whole snapshot
// atomically, so readers never observe a partially loaded corpus.
type Registry struct {
	current atomic.Pointer[snapshot]
}

// NewRegistry returns an empty registry. It serves no lookups until Load
// succeeds.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load reads the full corpus from the store, validates every record, and
// atomically replaces the active snapshot. On any error the previous snapshot
// stays in place.
func (r *Registry) Load(ctx context.Context, store KnowledgeStore) error {
	palaces, err := store.GetAllPalaces(ctx)
	if err != nil {
		return fmt.Errorf("loading palaces: %w", err)
	}
	stars, err := store.GetAllStars(ctx)
	if err != nil {
		return fmt.Errorf("loading stars: %w", err)
	}
	transformations, err := store.GetAllTransformations(ctx)
	if err != nil {
		return fmt.Errorf("loading transformations: %w", err)
	}
	benefic, err := store.GetBeneficStars(ctx)
	if err != nil {
		return fmt.Errorf("loading benefic stars: %w", err)
	}
	malefic, err := store.GetMaleficStars(ctx)
	if err != nil {
		return fmt.Errorf("loading malefic stars: %w", err)
	}
	rules, err := store.GetRules(ctx)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	snap := &snapshot{
		palaces:             palaces,
		stars:               stars,
		transformations:     transformations,
		benefic:             benefic,
		malefic:             malefic,
		rules:               rules,
		palaceIndex:         make(map[string]*Palace, len(palaces)*2),
		starIndex:           make(map[string]*Star, len(stars)*2),
		transformationIndex: make(map[string]*Transformation, len(transformations)*2),
		beneficIndex:        make(map[string]*BeneficStar, len(benefic)*2),
		maleficIndex:        make(map[string]*MaleficStar, len(malefic)*2),
	}

	for i := range snap.palaces {
		p := &snap.palaces[i]
		if err := p.Validate(); err != nil {
			return err
		}
		snap.palaceIndex[p.ID] = p
		snap.palaceIndex[p.Chinese] = p
	}
	for i := range snap.stars {
		s := &snap.stars[i]
		if err := s.Validate(); err != nil {
			return err
		}
		snap.starIndex[s.ID] = s
		snap.starIndex[s.Chinese] = s
	}
	for i := range snap.transformations {
		t := &snap.transformations[i]
		if err := t.Validate(); err != nil {
			return err
		}
		snap.transformationIndex[t.ID] = t
		snap.transformationIndex[t.Chinese] = t
		// chart payloads carry single-character transformation marks
		snap.transformationIndex[t.Kind()] = t
	}
	for i := range snap.benefic {
		b := &snap.benefic[i]
		if err := b.Validate(); err != nil {
			return err
		}
		snap.beneficIndex[b.ID] = b
		snap.beneficIndex[b.Chinese] = b
	}
	for i := range snap.malefic {
		m := &snap.malefic[i]
		if err := m.Validate(); err != nil {
			return err
		}
		snap.maleficIndex[m.ID] = m
		snap.maleficIndex[m.Chinese] = m
	}
	for i := range snap.rules {
		if err := snap.rules[i].Validate(); err != nil {
			return err
		}
	}

	r.current.Store(snap)
	return nil
}

// Loaded reports whether a corpus snapshot is active.
func (r *Registry) Loaded() bool {
	return r.current.Load() != nil
}

// Counts returns record totals for the active snapshot.
func (r *Registry) Counts() Counts {
	snap := r.current.Load()
	if snap == nil {
		return Counts{}
	}
	return Counts{
		Palaces:         len(snap.palaces),
		Stars:           len(snap.stars),
		Transformations: len(snap.transformations),
		BeneficStars:    len(snap.benefic),
		MaleficStars:    len(snap.malefic),
		Rules:           len(snap.rules),
	}
}

// Palaces returns all loaded palaces in corpus order.
func (r *Registry) Palaces() []Palace {
	if snap := r.current.Load(); snap != nil {
		return snap.palaces
	}
	return nil
}

// Stars returns all loaded stars in corpus order.
func (r *Registry) Stars() []Star {
	if snap := r.current.Load(); snap != nil {
		return snap.stars
	}
	return nil
}

// Transformations returns all loaded transformations in corpus order.
func (r *Registry) Transformations() []Transformation {
	if snap := r.current.Load(); snap != nil {
		return snap.transformations
	}
	return nil
}

// Rules returns all loaded rules in corpus order. Matching depends on this
// order being stable between loads.
func (r *Registry) Rules() []Rule {
	if snap := r.current.Load(); snap != nil {
		return snap.rules
	}
	return nil
}

// LookupPalace resolves a palace by id or by Chinese name.
func (r *Registry) LookupPalace(key string) (*Palace, bool) {
	snap := r.current.Load()
	if snap == nil {
		return nil, false
	}
	p, ok := snap.palaceIndex[key]
	return p, ok
}

// LookupStar resolves a major star by id or by Chinese name.
func (r *Registry) LookupStar(key string) (*Star, bool) {
	snap := r.current.Load()
	if snap == nil {
		return nil, false
	}
	s, ok := snap.starIndex[key]
	return s, ok
}

// LookupTransformation resolves a transformation by id, full Chinese name,
// or single-character mark.
func (r *Registry) LookupTransformation(key string) (*Transformation, bool) {
	snap := r.current.Load()
	if snap == nil {
		return nil, false
	}
	t, ok := snap.transformationIndex[key]
	return t, ok
}

// IsBeneficStar reports whether the key names a benefic star. Major stars with
// a benefic nature count too.
func (r *Registry) IsBeneficStar(key string) bool {
	snap := r.current.Load()
	if snap == nil {
		return false
	}
	if _, ok := snap.beneficIndex[key]; ok {
		return true
	}
	if s, ok := snap.starIndex[key]; ok {
		switch s.ID {
		case "ziwei", "taiyang", "tiantong", "tianfu":
			return true
		}
	}
	return false
}

// IsMaleficStar reports whether the key names a malefic star.
func (r *Registry) IsMaleficStar(key string) bool {
	snap := r.current.Load()
	if snap == nil {
		return false
	}
	_, ok := snap.maleficIndex[key]
	return ok
}
