package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBureau(t *testing.T) {
	for n := 2; n <= 6; n++ {
		b, err := NewBureau(n)
		require.NoError(t, err)
		assert.True(t, b.IsValid())
	}

	_, err := NewBureau(1)
	assert.Error(t, err)
	_, err = NewBureau(7)
	assert.Error(t, err)
}

func TestBureauNames(t *testing.T) {
	assert.Equal(t, "水二局", BureauWater.Name())
	assert.Equal(t, "火六局", BureauFire.Name())
	assert.Equal(t, "水二局 (Water)", BureauWater.DisplayName())
	assert.Equal(t, "金四局 (Metal)", BureauMetal.DisplayName())
	assert.Equal(t, "Bureau 9", Bureau(9).DisplayName())
}

func TestBureauHarmony(t *testing.T) {
	t.Run("same element is always compatible", func(t *testing.T) {
		for _, b := range []Bureau{BureauWater, BureauWood, BureauMetal, BureauEarth, BureauFire} {
			assert.True(t, b.HarmoniousWith(b), b.Name())
		}
	})

	t.Run("generative neighbors are compatible and symmetric", func(t *testing.T) {
		pairs := [][2]Bureau{
			{BureauWood, BureauFire},
			{BureauFire, BureauEarth},
			{BureauEarth, BureauMetal},
			{BureauMetal, BureauWater},
			{BureauWater, BureauWood},
		}
		for _, pair := range pairs {
			assert.True(t, pair[0].HarmoniousWith(pair[1]))
			assert.True(t, pair[1].HarmoniousWith(pair[0]))
		}
	})

	t.Run("non-adjacent elements conflict", func(t *testing.T) {
		assert.False(t, BureauWater.HarmoniousWith(BureauFire))
		assert.False(t, BureauWood.HarmoniousWith(BureauMetal))
	})

	t.Run("invalid bureaus never harmonize", func(t *testing.T) {
		assert.False(t, Bureau(0).HarmoniousWith(BureauWater))
		assert.False(t, BureauWater.HarmoniousWith(Bureau(9)))
	})
}
