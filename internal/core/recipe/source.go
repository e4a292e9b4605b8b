package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Source 公開レシピの取得元
// 永続化バックエンド（リモート）と静的フォールバックの両方がこの形に従う。
// prefecture / category はサーバ側の事前絞り込みで、どちらも空で全件。
type Source interface {
	FetchPublished(ctx context.Context, prefecture, category string) ([]common.Recipe, error)
}

// RemoteSource 永続化バックエンドの HTTP クライアント
type RemoteSource struct {
	config *config.Config
	client *resty.Client
}

// NewRemoteSource リモート取得元を生成
func NewRemoteSource(cfg *config.Config) *RemoteSource {
	client := resty.New().
		SetBaseURL(cfg.Source.BaseURL).
		SetTimeout(cfg.Source.Timeout).
		SetHeader("Accept", "application/json")

	return &RemoteSource{
		config: cfg,
		client: client,
	}
}

// FetchPublished 公開済みレシピを取得する
func (s *RemoteSource) FetchPublished(ctx context.Context, prefecture, category string) ([]common.Recipe, error) {
	req := s.client.R().
		SetContext(ctx).
		SetQueryParam("published", "true")

	if prefecture != "" {
		req.SetQueryParam("prefecture", prefecture)
	}
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe source returned error: %s", resp.Status())
	}

	var result struct {
		Recipes []common.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse recipe source response: %w", err)
	}

	return result.Recipes, nil
}

// SeedSource 静的フォールバックデータ
// リモート取得元が無効・到達不能・空のときに使う組み込みデータセット。
// 構造はリモートのレシピと同一で、コアは両者を区別しない。
type SeedSource struct{}

// NewSeedSource フォールバック取得元を生成
func NewSeedSource() *SeedSource {
	return &SeedSource{}
}

// FetchPublished 組み込みデータから公開済みレシピを返す
// リモートと同じ事前絞り込み契約を守る。
func (s *SeedSource) FetchPublished(ctx context.Context, prefecture, category string) ([]common.Recipe, error) {
	recipes := SeedRecipes()

	result := make([]common.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !r.IsPublished {
			continue
		}
		if prefecture != "" && r.Prefecture != prefecture {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}
