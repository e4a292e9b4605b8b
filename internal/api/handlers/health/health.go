package health

import (
	"net/http"
	"runtime"
	"time"

	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse ヘルスチェック応答
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// CacheStats 検索キャッシュの統計を提供する
type CacheStats interface {
	GetStats() map[string]interface{}
}

// HealthCheck ヘルスチェックハンドラ
func HealthCheck(c *gin.Context) {
	// 設定を取得
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// ランタイム情報を取得
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// 応答を構築
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	// 検索キャッシュがあれば統計を載せる
	if stats, exists := c.Get("cache_stats"); exists {
		if provider, ok := stats.(CacheStats); ok && provider != nil {
			response.Cache = provider.GetStats()
		}
	}

	// リクエストを記録
	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck レディネスチェックハンドラ
func ReadinessCheck(c *gin.Context) {
	// 下書きストアが閉じていれば ready ではない
	if store, exists := c.Get("draft_store"); exists {
		type closedChecker interface{ Closed() bool }
		if s, ok := store.(closedChecker); ok && s.Closed() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck ライブネスチェックハンドラ
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
