package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/knowledge"
)

func TestEmbeddedCorpusCounts(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	palaces, err := store.GetAllPalaces(ctx)
	require.NoError(t, err)
	assert.Len(t, palaces, 12)

	stars, err := store.GetAllStars(ctx)
	require.NoError(t, err)
	assert.Len(t, stars, 14)

	transformations, err := store.GetAllTransformations(ctx)
	require.NoError(t, err)
	assert.Len(t, transformations, 4)

	benefic, err := store.GetBeneficStars(ctx)
	require.NoError(t, err)
	assert.Len(t, benefic, 4)

	malefic, err := store.GetMaleficStars(ctx)
	require.NoError(t, err)
	assert.Len(t, malefic, 4)

	rules, err := store.GetRules(ctx)
	require.NoError(t, err)
	assert.Len(t, rules, 28)
}

func TestEmbeddedCorpusValidates(t *testing.T) {
	registry := knowledge.NewRegistry()
	require.NoError(t, registry.Load(context.Background(), NewStore()))
	assert.True(t, registry.Loaded())
}

func TestEmbeddedCorpusLookups(t *testing.T) {
	registry := knowledge.NewRegistry()
	require.NoError(t, registry.Load(context.Background(), NewStore()))

	ziwei, ok := registry.LookupStar("紫微")
	require.True(t, ok)
	assert.Equal(t, "ziwei", ziwei.ID)

	ming, ok := registry.LookupPalace("命宮")
	require.True(t, ok)
	assert.Equal(t, 1, ming.Number)

	lu, ok := registry.LookupTransformation("祿")
	require.True(t, ok)
	assert.Equal(t, "luhua", lu.ID)

	assert.True(t, registry.IsMaleficStar("火星"))
	assert.True(t, registry.IsBeneficStar("左輔"))
}

func TestRuleIDsAreUnique(t *testing.T) {
	rules, err := NewStore().GetRules(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		assert.False(t, seen[rule.ID], "duplicate rule id %s", rule.ID)
		seen[rule.ID] = true
	}
}

func TestPalaceNumbersCoverOneThroughTwelve(t *testing.T) {
	palaces, err := NewStore().GetAllPalaces(context.Background())
	require.NoError(t, err)

	numbers := make(map[int]bool, len(palaces))
	for _, p := range palaces {
		numbers[p.Number] = true
	}
	for n := 1; n <= 12; n++ {
		assert.True(t, numbers[n], "missing palace number %d", n)
	}
}
