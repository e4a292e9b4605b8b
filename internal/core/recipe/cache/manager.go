package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"go.uber.org/zap"
)

// CacheManager 検索結果のインメモリキャッシュ
// 検索条件のシグネチャをキーに、直近の結果 JSON を TTL 付きで保持する。
type CacheManager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

// cacheEntry キャッシュ項目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats キャッシュ統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager キャッシュマネージャを生成
func NewManager(cfg *config.Config) *CacheManager {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		stats:  cacheStats{},
	}

	// 期限切れ掃除のゴルーチンを起動
	go m.startCleanup()

	common.LogInfo("キャッシュマネージャを初期化しました",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("生存時間", cfg.Cache.TTL),
		zap.Duration("掃除間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get キャッシュ値を取得
func (m *CacheManager) Get(ctx context.Context, kind, key string) (string, error) {
	if m == nil || !m.config.Cache.Enabled {
		return "", common.ErrCacheDisabled
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cacheKey := m.generateKey(kind, key)

	entry, exists := m.store[cacheKey]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss(kind, cacheKey)
		return "", common.ErrCacheDisabled
	}

	// 期限切れチェック
	if time.Now().After(entry.expiresAt) {
		delete(m.store, cacheKey)
		m.stats.evictions++
		common.LogInfo("キャッシュの期限切れ",
			zap.String("種類", kind),
		)
		return "", common.ErrCacheDisabled
	}

	// アクセス統計を更新
	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[cacheKey] = entry
	m.stats.hits++

	common.LogCacheHit(kind, cacheKey)
	return entry.value, nil
}

// Set キャッシュ値を設定
func (m *CacheManager) Set(ctx context.Context, kind, key, value string) error {
	if m == nil || !m.config.Cache.Enabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量チェック
	if len(m.store) >= m.config.Cache.MaxSize {
		evicted := m.cleanup()
		common.LogInfo("キャッシュ掃除を実行しました",
			zap.Int("掃除件数", evicted),
		)

		// まだ超えていれば LRU で 1 件追い出す
		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRU()
		}

		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("キャッシュが満杯です",
				zap.Int("現在容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[m.generateKey(kind, key)] = cacheEntry{
		value:       value,
		expiresAt:   now.Add(m.config.Cache.TTL),
		createdAt:   now,
		lastAccess:  now,
		accessCount: 0,
	}

	return nil
}

// generateKey キャッシュキーを生成
func (m *CacheManager) generateKey(kind, key string) string {
	return fmt.Sprintf("%s:%s", kind, m.hashString(key))
}

// hashString SHA-256 ハッシュ
func (m *CacheManager) hashString(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// startCleanup 期限切れ掃除ループ
func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		m.cleanup()
		m.mu.Unlock()
	}
}

// cleanup 期限切れ項目を削除（呼び出し側がロックを握る）
func (m *CacheManager) cleanup() int {
	now := time.Now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	return count
}

// evictLRU 最もアクセスの少ない項目を追い出す
func (m *CacheManager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// GetStats キャッシュ統計を取得
func (m *CacheManager) GetStats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": hitRatio,
	}
}

// Close キャッシュマネージャを閉じる
func (m *CacheManager) Close() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("キャッシュマネージャを閉じました",
		zap.Int64("ヒット数", m.stats.hits),
		zap.Int64("ミス数", m.stats.misses),
		zap.Int64("追い出し数", m.stats.evictions),
	)
	return nil
}
