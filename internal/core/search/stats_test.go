package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsByPrefecture(t *testing.T) {
	stats := StatsByPrefecture(testRecipes())
	require.Len(t, stats, 2)
	assert.Equal(t, PrefectureStat{Prefecture: "青森県", Count: 2}, stats[0])
	assert.Equal(t, PrefectureStat{Prefecture: "新潟県", Count: 1}, stats[1])
}

func TestStatsByCategory(t *testing.T) {
	stats := StatsByCategory(testRecipes())
	require.Len(t, stats, 3)
	// 件数が同じなら名前順
	for _, s := range stats {
		assert.Equal(t, 1, s.Count)
	}
}

func TestPopularTags(t *testing.T) {
	stats := PopularTags(testRecipes(), 0)
	require.NotEmpty(t, stats)
	// 郷土料理は 2 件で先頭
	assert.Equal(t, TagStat{Tag: "郷土料理", Count: 2}, stats[0])

	// limit を適用
	limited := PopularTags(testRecipes(), 2)
	assert.Len(t, limited, 2)
}

func TestRelatedRecipes(t *testing.T) {
	// r3（青森県・おやつ）の関連は同じ県の r2
	related := RelatedRecipes(testRecipes(), "r3", 10)
	require.Len(t, related, 1)
	assert.Equal(t, "r2", related[0].ID)
}

func TestRelatedRecipesUnknownID(t *testing.T) {
	related := RelatedRecipes(testRecipes(), "missing", 10)
	assert.Empty(t, related)
}

func TestRelatedRecipesLimit(t *testing.T) {
	related := RelatedRecipes(testRecipes(), "r2", 1)
	assert.Len(t, related, 1)
}
