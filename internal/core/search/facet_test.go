package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFacetsNoConstraints(t *testing.T) {
	recipes := testRecipes()

	// ファセット未指定なら全件残る
	result := ApplyFacets(recipes, Filters{})
	assert.Equal(t, recipes, result)
}

func TestApplyFacetsPrefecture(t *testing.T) {
	result := ApplyFacets(testRecipes(), Filters{Prefecture: "青森県"})
	require.Len(t, result, 2)
	assert.Equal(t, "r2", result[0].ID)
	assert.Equal(t, "r3", result[1].ID)
}

func TestApplyFacetsCategory(t *testing.T) {
	result := ApplyFacets(testRecipes(), Filters{Category: "汁物"})
	require.Len(t, result, 1)
	assert.Equal(t, "r2", result[0].ID)
}

func TestApplyFacetsSeason(t *testing.T) {
	// 季節はレシピの季節集合に含まれれば一致
	result := ApplyFacets(testRecipes(), Filters{Season: "冬"})
	require.Len(t, result, 2)
	assert.Equal(t, "r2", result[0].ID)
	assert.Equal(t, "r3", result[1].ID)
}

func TestApplyFacetsTagsAnyMatch(t *testing.T) {
	// タグ集合の内部は OR
	result := ApplyFacets(testRecipes(), Filters{Tags: []string{"りんご", "温まる"}})
	require.Len(t, result, 2)
	assert.Equal(t, "r2", result[0].ID)
	assert.Equal(t, "r3", result[1].ID)
}

func TestApplyFacetsCookingTimeMax(t *testing.T) {
	result := ApplyFacets(testRecipes(), Filters{CookingTimeMax: 30})
	require.Len(t, result, 2)
	assert.Equal(t, "r2", result[0].ID)
	assert.Equal(t, "r3", result[1].ID)

	// 0 は制約なし
	result = ApplyFacets(testRecipes(), Filters{CookingTimeMax: 0})
	assert.Len(t, result, 3)
}

func TestApplyFacetsCombinedAnd(t *testing.T) {
	// ファセット間は AND
	result := ApplyFacets(testRecipes(), Filters{
		Prefecture:     "青森県",
		Season:         "冬",
		CookingTimeMax: 25,
	})
	require.Len(t, result, 1)
	assert.Equal(t, "r3", result[0].ID)
}

func TestApplyFacetsUnknownValue(t *testing.T) {
	// 列挙にない値はエラーではなく 0 件
	result := ApplyFacets(testRecipes(), Filters{Prefecture: "存在しない県"})
	assert.Empty(t, result)
}

func TestHasActiveFacets(t *testing.T) {
	assert.False(t, Filters{}.HasActiveFacets())
	assert.False(t, Filters{Query: "りんご", SortKey: SortLatest}.HasActiveFacets())
	assert.True(t, Filters{Prefecture: "青森県"}.HasActiveFacets())
	assert.True(t, Filters{Tags: []string{"郷土料理"}}.HasActiveFacets())
	assert.True(t, Filters{CookingTimeMax: 30}.HasActiveFacets())
}
