package search

import (
	"testing"

	"ajibaa/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortLatest, ParseSortKey("latest"))
	assert.Equal(t, SortPopular, ParseSortKey("popular"))
	assert.Equal(t, SortMostLiked, ParseSortKey("mostLiked"))
	assert.Equal(t, SortCookingTime, ParseSortKey("cookingTime"))

	// 未知の値は新着順へ
	assert.Equal(t, SortLatest, ParseSortKey(""))
	assert.Equal(t, SortLatest, ParseSortKey("viewCount"))
}

func TestSortRecipesLatest(t *testing.T) {
	result := SortRecipes(testRecipes(), SortLatest)
	require.Len(t, result, 3)
	assert.Equal(t, "r3", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
	assert.Equal(t, "r1", result[2].ID)
}

func TestSortRecipesPopular(t *testing.T) {
	result := SortRecipes(testRecipes(), SortPopular)
	require.Len(t, result, 3)
	assert.Equal(t, "r1", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
	assert.Equal(t, "r3", result[2].ID)
}

func TestSortRecipesMostLikedMatchesPopular(t *testing.T) {
	// popular と mostLiked は同一の並び
	recipes := testRecipes()
	assert.Equal(t, SortRecipes(recipes, SortPopular), SortRecipes(recipes, SortMostLiked))
}

func TestSortRecipesCookingTime(t *testing.T) {
	result := SortRecipes(testRecipes(), SortCookingTime)
	require.Len(t, result, 3)
	assert.Equal(t, "r3", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
	assert.Equal(t, "r1", result[2].ID)
}

func TestSortRecipesStable(t *testing.T) {
	recipes := []common.Recipe{
		{ID: "a", LikeCount: 10, CreatedAt: 100},
		{ID: "b", LikeCount: 10, CreatedAt: 200},
		{ID: "c", LikeCount: 10, CreatedAt: 300},
	}

	// 同値の要素は入力の相対順を保つ
	result := SortRecipes(recipes, SortPopular)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
	assert.Equal(t, "c", result[2].ID)
}

func TestSortRecipesDoesNotMutateInput(t *testing.T) {
	recipes := testRecipes()
	snapshot := testRecipes()

	SortRecipes(recipes, SortCookingTime)
	assert.Equal(t, snapshot, recipes)
}
