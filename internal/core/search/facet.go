package search

import (
	"ajibaa/internal/pkg/common"
)

// Filters 検索条件
// UI セッションごとに生成される一時的な値オブジェクト。永続化しない。
type Filters struct {
	Query          string   `json:"query,omitempty"`
	Prefecture     string   `json:"prefecture,omitempty"`
	Category       string   `json:"category,omitempty"`
	Season         string   `json:"season,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	CookingTimeMax int      `json:"cooking_time_max,omitempty"` // 0 は指定なし
	SortKey        SortKey  `json:"sort_key,omitempty"`
}

// HasActiveFacets いずれかのファセットが有効か
func (f Filters) HasActiveFacets() bool {
	return f.Prefecture != "" || f.Category != "" || f.Season != "" ||
		len(f.Tags) > 0 || f.CookingTimeMax > 0
}

// ApplyFacets ファセット絞り込み
// 各ファセットは任意。未指定のファセットは制約を課さない。
// ファセット間は AND、タグ集合の内部だけは OR（選択タグのいずれかを含めば一致）。
// 列挙にない値は単に 0 件になるだけでエラーにはしない。
func ApplyFacets(recipes []common.Recipe, filters Filters) []common.Recipe {
	result := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if matchesFacets(recipe, filters) {
			result = append(result, recipe)
		}
	}
	return result
}

func matchesFacets(recipe common.Recipe, filters Filters) bool {
	if filters.Prefecture != "" && recipe.Prefecture != filters.Prefecture {
		return false
	}

	if filters.Category != "" && recipe.Category != filters.Category {
		return false
	}

	// 季節はレシピ側が集合。選択した季節を含んでいれば一致
	if filters.Season != "" && !containsString(recipe.Season, filters.Season) {
		return false
	}

	if filters.CookingTimeMax > 0 && recipe.CookingTime > filters.CookingTimeMax {
		return false
	}

	// タグは積集合が空でなければ一致
	if len(filters.Tags) > 0 && !intersects(recipe.Tags, filters.Tags) {
		return false
	}

	return true
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
