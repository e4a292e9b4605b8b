package search

import (
	"sort"

	"ajibaa/internal/pkg/common"
)

// PrefectureStat 都道府県別の件数
type PrefectureStat struct {
	Prefecture string `json:"prefecture"`
	Count      int    `json:"count"`
}

// CategoryStat カテゴリ別の件数
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TagStat タグクラウド用の件数
type TagStat struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// StatsByPrefecture 都道府県ごとのレシピ件数（件数降順、同数は名前順）
func StatsByPrefecture(recipes []common.Recipe) []PrefectureStat {
	counts := make(map[string]int)
	for _, r := range recipes {
		counts[r.Prefecture]++
	}

	stats := make([]PrefectureStat, 0, len(counts))
	for prefecture, count := range counts {
		stats = append(stats, PrefectureStat{Prefecture: prefecture, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Prefecture < stats[j].Prefecture
	})
	return stats
}

// StatsByCategory カテゴリごとのレシピ件数（件数降順、同数は名前順）
func StatsByCategory(recipes []common.Recipe) []CategoryStat {
	counts := make(map[string]int)
	for _, r := range recipes {
		counts[r.Category]++
	}

	stats := make([]CategoryStat, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, CategoryStat{Category: category, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// PopularTags 出現回数の多いタグ（件数降順、同数は名前順、limit 件まで）
func PopularTags(recipes []common.Recipe, limit int) []TagStat {
	counts := make(map[string]int)
	for _, r := range recipes {
		for _, tag := range r.Tags {
			counts[tag]++
		}
	}

	stats := make([]TagStat, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, TagStat{Tag: tag, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// RelatedRecipes 関連レシピ（同じ都道府県またはカテゴリ、自分自身は除く）
// 新着順で limit 件まで。対象が見つからない場合は空を返す。
func RelatedRecipes(recipes []common.Recipe, recipeID string, limit int) []common.Recipe {
	var target *common.Recipe
	for i := range recipes {
		if recipes[i].ID == recipeID {
			target = &recipes[i]
			break
		}
	}
	if target == nil {
		return []common.Recipe{}
	}

	related := make([]common.Recipe, 0, limit)
	for _, r := range SortRecipes(recipes, SortLatest) {
		if r.ID == recipeID {
			continue
		}
		if r.Prefecture == target.Prefecture || r.Category == target.Category {
			related = append(related, r)
			if limit > 0 && len(related) >= limit {
				break
			}
		}
	}
	return related
}
