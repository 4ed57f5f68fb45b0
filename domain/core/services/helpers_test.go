package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
	"ziwei-backend/domain/knowledge"
)

// stubStore serves a small fixed corpus for service tests
type stubStore struct {
	palaces         []knowledge.Palace
	stars           []knowledge.Star
	transformations []knowledge.Transformation
	benefic         []knowledge.BeneficStar
	malefic         []knowledge.MaleficStar
	rules           []knowledge.Rule
}

func (s *stubStore) GetAllPalaces(ctx context.Context) ([]knowledge.Palace, error) {
	return s.palaces, nil
}
func (s *stubStore) GetAllStars(ctx context.Context) ([]knowledge.Star, error) {
	return s.stars, nil
}
func (s *stubStore) GetAllTransformations(ctx context.Context) ([]knowledge.Transformation, error) {
	return s.transformations, nil
}
func (s *stubStore) GetBeneficStars(ctx context.Context) ([]knowledge.BeneficStar, error) {
	return s.benefic, nil
}
func (s *stubStore) GetMaleficStars(ctx context.Context) ([]knowledge.MaleficStar, error) {
	return s.malefic, nil
}
func (s *stubStore) GetRules(ctx context.Context) ([]knowledge.Rule, error) {
	return s.rules, nil
}

func testCorpus() *stubStore {
	return &stubStore{
		palaces: []knowledge.Palace{
			{
				ID: "ming", Number: 1, Chinese: "命宮", English: "Life Palace",
				Meaning:            "Core destiny and personality",
				Governs:            []string{"personality", "destiny", "life direction"},
				PositiveIndicators: "Strong sense of self",
				NegativeIndicators: "Identity struggles",
			},
			{
				ID: "fuqi", Number: 3, Chinese: "夫妻宮", English: "Marriage Palace",
				Meaning:            "Marriage and intimate partnerships",
				Governs:            []string{"marriage", "partnership"},
				PositiveIndicators: "Harmonious partnerships",
				NegativeIndicators: "Relationship friction",
			},
			{
				ID: "caibao", Number: 5, Chinese: "財帛宮", English: "Wealth Palace",
				Meaning:            "Money and material resources",
				Governs:            []string{"wealth", "income"},
				PositiveIndicators: "Steady accumulation",
				NegativeIndicators: "Volatile finances",
			},
			{
				ID: "jieya", Number: 6, Chinese: "疾厄宮", English: "Health Palace",
				Meaning:            "Health and physical constitution",
				Governs:            []string{"health", "vitality"},
				PositiveIndicators: "Robust constitution",
				NegativeIndicators: "Recurring ailments",
			},
			{
				ID: "guanlu", Number: 9, Chinese: "官祿宮", English: "Career Palace",
				Meaning:            "Career and public standing",
				Governs:            []string{"career", "achievement"},
				PositiveIndicators: "Recognition at work",
				NegativeIndicators: "Career obstacles",
			},
		},
		stars: []knowledge.Star{
			{
				ID: "ziwei", Number: 1, Chinese: "紫微", English: "Emperor Star",
				Element: "土", Archetype: "The Emperor",
				GeneralNature: "Noble, authoritative",
				KeyTraits:     []string{"leadership", "dignity"},
				PalaceMeanings: map[string]knowledge.PalaceMeaning{
					"ming": {Positive: "Natural leadership", Negative: "Arrogance"},
				},
			},
			{
				ID: "tianfu", Number: 2, Chinese: "天府", English: "Treasury Star",
				Element: "土", Archetype: "The Steward",
				GeneralNature: "Stable, prosperous",
				KeyTraits:     []string{"stability"},
			},
			{
				ID: "taiyang", Number: 3, Chinese: "太陽", English: "Sun Star",
				Element: "火", Archetype: "The Sun",
				GeneralNature: "Radiant, generous",
				KeyTraits:     []string{"warmth"},
			},
		},
		transformations: []knowledge.Transformation{
			{
				ID: "luhua", Number: 1, Chinese: "祿化", English: "Wealth Transformation",
				Effects: "Brings prosperity",
			},
		},
		benefic: []knowledge.BeneficStar{
			{ID: "wenchang", Chinese: "文昌", English: "Literary Star", Characteristic: "Scholarly"},
		},
		malefic: []knowledge.MaleficStar{
			{ID: "huoxing", Chinese: "火星", English: "Fire Star", Characteristic: "Volatile"},
		},
		rules: []knowledge.Rule{
			{
				ID: "rule-ziwei-ming", Scope: knowledge.ScopeStar,
				Condition: knowledge.RuleCondition{Star: "紫微", Palace: "命宮"},
				Interpretation: knowledge.Interpretation{
					Zh: "命主貴氣十足，具領導能力。", En: "Noble bearing, leadership qualities", Dimension: "性格",
				},
				Consensus:  knowledge.ConsensusAgreed,
				Statistics: knowledge.RuleStatistics{SampleSize: 250, MatchRate: 0.82, ConfidenceLevel: 0.82},
			},
			{
				ID: "rule-tianfu", Scope: knowledge.ScopeStar,
				Condition: knowledge.RuleCondition{Star: "天府"},
				Interpretation: knowledge.Interpretation{
					Zh: "福厚祿重，處事穩健。", En: "Blessed with good fortune", Dimension: "福運",
				},
				Consensus:  knowledge.ConsensusAgreed,
				Statistics: knowledge.RuleStatistics{SampleSize: 320, MatchRate: 0.79, ConfidenceLevel: 0.79},
			},
			{
				ID: "rule-lu", Scope: knowledge.ScopeTransformation,
				Condition: knowledge.RuleCondition{Transformation: "祿"},
				Interpretation: knowledge.Interpretation{
					Zh: "化祿代表利益、收入、好運。", En: "Brings wealth and good fortune", Dimension: "財運",
				},
				Consensus:  knowledge.ConsensusAgreed,
				Statistics: knowledge.RuleStatistics{SampleSize: 400, MatchRate: 0.84, ConfidenceLevel: 0.84},
			},
			{
				ID: "rule-ziwei-taiyang", Scope: knowledge.ScopePattern,
				Condition: knowledge.RuleCondition{Pattern: []string{"紫微", "太陽"}},
				Interpretation: knowledge.Interpretation{
					Zh: "紫日格局，事業心強。", En: "Ziwei-Taiyang pattern, career-driven", Dimension: "事業",
				},
				Consensus:  knowledge.ConsensusDisputed,
				Statistics: knowledge.RuleStatistics{SampleSize: 180, MatchRate: 0.75, ConfidenceLevel: 0.75},
			},
			{
				ID: "rule-fuqi-occupied", Scope: knowledge.ScopePalace,
				Condition: knowledge.RuleCondition{Palace: "夫妻宮"},
				Interpretation: knowledge.Interpretation{
					Zh: "夫妻宮有主星，感情生活活躍。", En: "Active marriage palace", Dimension: "感情",
				},
				Consensus:  knowledge.ConsensusAgreed,
				Statistics: knowledge.RuleStatistics{SampleSize: 150, MatchRate: 0.7, ConfidenceLevel: 0.7},
			},
		},
	}
}

func registryFrom(t *testing.T, store *stubStore) *knowledge.Registry {
	t.Helper()
	registry := knowledge.NewRegistry()
	require.NoError(t, registry.Load(context.Background(), store))
	return registry
}

func loadedRegistry(t *testing.T) *knowledge.Registry {
	t.Helper()
	return registryFrom(t, testCorpus())
}

func testChart() *entities.Chart {
	return &entities.Chart{
		StarPositions: map[string][]string{
			"紫微": {"命宮"},
			"天府": {"夫妻宮"},
			"太陽": {"官祿宮"},
		},
		FiveElementBureau: valueobjects.BureauWood,
		LifeHouseIndex:    0,
		BaseFourTransformations: map[string]string{
			"祿": "廉貞", "權": "破軍", "科": "武曲", "忌": "太陽",
		},
		Houses: []entities.House{
			{Palace: "命宮", MajorStars: []string{"紫微"}, Transformations: []string{"祿"}},
			{Palace: "兄弟宮", MajorStars: []string{}},
			{Palace: "夫妻宮", MajorStars: []string{"天府"}},
			{Palace: "官祿宮", MajorStars: []string{"太陽"}},
		},
	}
}
