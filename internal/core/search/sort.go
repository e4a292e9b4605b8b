package search

import (
	"sort"

	"ajibaa/internal/pkg/common"
)

// SortKey 並び順
type SortKey string

const (
	SortLatest      SortKey = "latest"      // 新着順（createdAt 降順）
	SortPopular     SortKey = "popular"     // 人気順
	SortMostLiked   SortKey = "mostLiked"   // いいね順
	SortCookingTime SortKey = "cookingTime" // 調理時間の短い順
)

// ParseSortKey 文字列から並び順を解釈。未知の値は新着順
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortLatest, SortPopular, SortMostLiked, SortCookingTime:
		return SortKey(s)
	default:
		return SortLatest
	}
}

// SortRecipes 指定キーで並べ替えた新しいスライスを返す。入力は変更しない。
// popular と mostLiked はどちらも likeCount 降順。独立した人気指標は
// 未導入のため意図的に同じ順序になる（閲覧数ベースの指標は導入しないこと）。
// 同値の要素は入力の相対順を保つ（安定ソート）。
func SortRecipes(recipes []common.Recipe, key SortKey) []common.Recipe {
	sorted := make([]common.Recipe, len(recipes))
	copy(sorted, recipes)

	switch key {
	case SortPopular, SortMostLiked:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].LikeCount > sorted[j].LikeCount
		})
	case SortCookingTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CookingTime < sorted[j].CookingTime
		})
	case SortLatest:
		fallthrough
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	}

	return sorted
}
