package search

import (
	"strings"

	"ajibaa/internal/pkg/common"
)

// SearchRecipes フリーテキスト検索
// クエリが空または空白のみの場合は入力をそのまま返す（順序・要素とも不変）。
// それ以外はタイトル・説明・思い出話・タグを固定順で連結した文字列を正規化し、
// 正規化済みクエリが部分文字列として含まれるレシピだけを残す。
// トークン分割・ステミング・あいまい一致・ランキングは行わない安定フィルタ。
func SearchRecipes(recipes []common.Recipe, query string) []common.Recipe {
	if strings.TrimSpace(query) == "" {
		return recipes
	}

	normalizedQuery := NormalizeText(query)

	result := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if strings.Contains(searchableText(recipe), normalizedQuery) {
			result = append(result, recipe)
		}
	}
	return result
}

// searchableText 検索対象文字列を構築
// 欠けているフィールドは空セグメントとして寄与する。panic しないこと。
func searchableText(recipe common.Recipe) string {
	parts := make([]string, 0, 3+len(recipe.Tags))
	parts = append(parts, recipe.Title, recipe.Description, recipe.Story)
	parts = append(parts, recipe.Tags...)
	return NormalizeText(strings.Join(parts, " "))
}
