package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Snapshot 公開レシピ集合の Redis スナップショット
// リモート取得した公開レシピを事前絞り込み条件（都道府県・カテゴリ）ごとに
// 保持し、取得元への往復を抑える。
type Snapshot struct {
	client *redis.Client
	config *config.SnapshotConfig
}

// NewSnapshot スナップショットキャッシュを生成
func NewSnapshot(cfg *config.SnapshotConfig) (*Snapshot, error) {
	if !cfg.Enabled {
		return &Snapshot{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 接続確認
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Snapshot{
		client: client,
		config: cfg,
	}, nil
}

// Get スナップショットを取得
func (s *Snapshot) Get(ctx context.Context, prefecture, category string) ([]common.Recipe, error) {
	if !s.config.Enabled || s.client == nil {
		return nil, fmt.Errorf("snapshot cache is disabled")
	}

	key := s.snapshotKey(prefecture, category)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("snapshot miss")
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var recipes []common.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return recipes, nil
}

// Set スナップショットを保存
func (s *Snapshot) Set(ctx context.Context, prefecture, category string, recipes []common.Recipe) error {
	if !s.config.Enabled || s.client == nil {
		return nil
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := s.snapshotKey(prefecture, category)
	if err := s.client.Set(ctx, key, data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

// Close 接続を閉じる
func (s *Snapshot) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// snapshotKey 事前絞り込み条件ごとのキー
func (s *Snapshot) snapshotKey(prefecture, category string) string {
	if prefecture == "" {
		prefecture = "-"
	}
	if category == "" {
		category = "-"
	}
	return fmt.Sprintf("recipes:published:%s:%s", prefecture, category)
}
