package recipe

import (
	"context"
	"encoding/json"
	"time"

	"ajibaa/internal/core/recipe/cache"
	"ajibaa/internal/core/search"
	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"go.uber.org/zap"
)

const cacheKindSearch = "search"

// Service レシピの検索・閲覧サービス
// 取得元（リモートまたはシード）の上に検索コアを載せ、
// スナップショットと検索結果キャッシュで呼び出しを吸収する。
type Service struct {
	config   *config.Config
	remote   Source
	seed     Source
	snapshot *cache.Snapshot
	cache    *cache.CacheManager
}

// NewService レシピサービスを生成
// snapshot と cacheManager は無効構成なら nil でよい。
func NewService(cfg *config.Config, remote Source, snapshot *cache.Snapshot, cacheManager *cache.CacheManager) *Service {
	return &Service{
		config:   cfg,
		remote:   remote,
		seed:     NewSeedSource(),
		snapshot: snapshot,
		cache:    cacheManager,
	}
}

// Search 検索・絞り込み・並び替えを一括実行する
// 取得 → 検索（部分一致）→ ファセット → ソート → limit の順。
func (s *Service) Search(ctx context.Context, filters search.Filters, limit int) ([]common.Recipe, error) {
	limit = s.clampLimit(limit)
	start := time.Now()

	cacheKey, _ := filtersCacheKey(filters)
	if cached, ok := s.cachedResults(ctx, cacheKey); ok {
		common.LogCacheHit(cacheKindSearch, cacheKey)
		return truncate(cached, limit), nil
	}

	recipes, err := s.fetchPublished(ctx, filters.Prefecture, filters.Category)
	if err != nil {
		return nil, err
	}

	results := search.Run(recipes, filters)
	s.storeResults(ctx, cacheKey, results)

	common.LogSearch(filters.Query, len(results), time.Since(start))
	return truncate(results, limit), nil
}

// Latest 新着順のレシピ一覧
func (s *Service) Latest(ctx context.Context, limit int) ([]common.Recipe, error) {
	return s.browse(ctx, search.SortLatest, limit)
}

// Popular 人気順のレシピ一覧
func (s *Service) Popular(ctx context.Context, limit int) ([]common.Recipe, error) {
	return s.browse(ctx, search.SortPopular, limit)
}

// MostLiked いいね順のレシピ一覧
// 並びは Popular と同一（どちらも likeCount 降順）。
func (s *Service) MostLiked(ctx context.Context, limit int) ([]common.Recipe, error) {
	return s.browse(ctx, search.SortMostLiked, limit)
}

func (s *Service) browse(ctx context.Context, key search.SortKey, limit int) ([]common.Recipe, error) {
	return s.Search(ctx, search.Filters{SortKey: key}, limit)
}

// Related 同じ都道府県またはカテゴリのレシピ
func (s *Service) Related(ctx context.Context, recipeID string, limit int) ([]common.Recipe, error) {
	recipes, err := s.fetchPublished(ctx, "", "")
	if err != nil {
		return nil, err
	}

	found := false
	for _, r := range recipes {
		if r.ID == recipeID {
			found = true
			break
		}
	}
	if !found {
		return nil, common.ErrRecipeNotFound
	}

	return search.RelatedRecipes(recipes, recipeID, s.clampLimit(limit)), nil
}

// StatsByPrefecture 都道府県別の件数集計
func (s *Service) StatsByPrefecture(ctx context.Context) ([]search.PrefectureStat, error) {
	recipes, err := s.fetchPublished(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return search.StatsByPrefecture(recipes), nil
}

// StatsByCategory カテゴリ別の件数集計
func (s *Service) StatsByCategory(ctx context.Context) ([]search.CategoryStat, error) {
	recipes, err := s.fetchPublished(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return search.StatsByCategory(recipes), nil
}

// PopularTags 使用頻度の高いタグ
func (s *Service) PopularTags(ctx context.Context, limit int) ([]search.TagStat, error) {
	recipes, err := s.fetchPublished(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return search.PopularTags(recipes, s.clampLimit(limit)), nil
}

// fetchPublished 公開済みレシピを取得する
// スナップショット → リモート → シードの順で試す。
// リモート失敗時はシードにフォールバックし、エラーにはしない。
func (s *Service) fetchPublished(ctx context.Context, prefecture, category string) ([]common.Recipe, error) {
	if s.snapshot != nil {
		if recipes, err := s.snapshot.Get(ctx, prefecture, category); err == nil && recipes != nil {
			common.LogCacheHit("snapshot", prefecture+"|"+category)
			return recipes, nil
		}
	}

	if s.remote != nil && s.config.Source.Enabled {
		recipes, err := s.remote.FetchPublished(ctx, prefecture, category)
		if err == nil {
			recipes = filterPublished(recipes)
			if s.snapshot != nil {
				if serr := s.snapshot.Set(ctx, prefecture, category, recipes); serr != nil {
					common.LogWarn("スナップショット保存に失敗", zap.Error(serr))
				}
			}
			return recipes, nil
		}
		common.LogWarn("リモート取得に失敗、シードデータを使用", zap.Error(err))
	}

	return s.seed.FetchPublished(ctx, prefecture, category)
}

// filterPublished 公開済みのみ残す
// 取得元の事前絞り込みを信用せず境界で再確認する。
func filterPublished(recipes []common.Recipe) []common.Recipe {
	result := make([]common.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.IsPublished {
			result = append(result, r)
		}
	}
	return result
}

func (s *Service) cachedResults(ctx context.Context, key string) ([]common.Recipe, bool) {
	if s.cache == nil || key == "" {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKindSearch, key)
	if err != nil {
		return nil, false
	}
	var recipes []common.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		return nil, false
	}
	return recipes, true
}

func (s *Service) storeResults(ctx context.Context, key string, results []common.Recipe) {
	if s.cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKindSearch, key, string(data)); err != nil {
		common.LogDebug("検索キャッシュ保存をスキップ", zap.Error(err))
	}
}

// filtersCacheKey 検索条件をキャッシュキー化する
func filtersCacheKey(filters search.Filters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.config.Search.DefaultLimit
	}
	if limit > s.config.Search.MaxLimit {
		return s.config.Search.MaxLimit
	}
	return limit
}

func truncate(recipes []common.Recipe, limit int) []common.Recipe {
	if limit > 0 && len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}
