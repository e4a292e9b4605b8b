package search

import (
	"testing"

	"ajibaa/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:          "r1",
			Title:       "おばあちゃんの炊き込みご飯",
			Description: "季節の野菜と出汁の旨味が染み込んだご飯",
			Story:       "母から受け継いだ思い出の味",
			Prefecture:  "新潟県",
			Category:    "ご飯もの",
			CookingTime: 60,
			Season:      []string{"春", "秋"},
			Tags:        []string{"家庭料理", "郷土料理"},
			LikeCount:   89,
			CreatedAt:   1000,
		},
		{
			ID:          "r2",
			Title:       "青森のせんべい汁",
			Description: "南部せんべいが溶け込む温かい汁物",
			Prefecture:  "青森県",
			Category:    "汁物",
			CookingTime: 30,
			Season:      []string{"冬"},
			Tags:        []string{"郷土料理", "温まる"},
			LikeCount:   64,
			CreatedAt:   2000,
		},
		{
			ID:          "r3",
			Title:       "りんご煮",
			Description: "青森のリンゴを使った素朴なおやつ",
			Prefecture:  "青森県",
			Category:    "おやつ・デザート",
			CookingTime: 20,
			Season:      []string{"秋", "冬"},
			Tags:        []string{"おやつ", "りんご"},
			LikeCount:   51,
			CreatedAt:   3000,
		},
	}
}

func TestSearchRecipesEmptyQuery(t *testing.T) {
	recipes := testRecipes()

	// 空クエリは入力をそのまま返す
	result := SearchRecipes(recipes, "")
	assert.Equal(t, recipes, result)

	// 空白のみも同様
	result = SearchRecipes(recipes, "   ")
	assert.Equal(t, recipes, result)
}

func TestSearchRecipesByTitle(t *testing.T) {
	result := SearchRecipes(testRecipes(), "せんべい")
	require.Len(t, result, 1)
	assert.Equal(t, "r2", result[0].ID)
}

func TestSearchRecipesKanaInsensitive(t *testing.T) {
	recipes := testRecipes()

	// ひらがなクエリでカタカナ本文にも一致する
	hiragana := SearchRecipes(recipes, "りんご")
	katakana := SearchRecipes(recipes, "リンゴ")

	require.Len(t, hiragana, 1)
	assert.Equal(t, "r3", hiragana[0].ID)
	assert.Equal(t, hiragana, katakana)
}

func TestSearchRecipesMatchesStoryAndTags(t *testing.T) {
	recipes := testRecipes()

	// 思い出話に一致
	result := SearchRecipes(recipes, "思い出の味")
	require.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].ID)

	// タグに一致
	result = SearchRecipes(recipes, "温まる")
	require.Len(t, result, 1)
	assert.Equal(t, "r2", result[0].ID)
}

func TestSearchRecipesNoMatch(t *testing.T) {
	result := SearchRecipes(testRecipes(), "存在しない料理")
	assert.Empty(t, result)
}

func TestSearchRecipesPreservesOrder(t *testing.T) {
	recipes := testRecipes()

	result := SearchRecipes(recipes, "郷土料理")
	require.Len(t, result, 2)
	assert.Equal(t, "r1", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
}

func TestSearchRecipesDoesNotMutateInput(t *testing.T) {
	recipes := testRecipes()
	snapshot := testRecipes()

	SearchRecipes(recipes, "りんご")
	assert.Equal(t, snapshot, recipes)
}
