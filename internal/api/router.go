package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	draftHandler "ajibaa/internal/api/handlers/draft"
	"ajibaa/internal/api/handlers/health"
	recipeHandler "ajibaa/internal/api/handlers/recipe"
	"ajibaa/internal/api/middleware"
	draftStore "ajibaa/internal/core/draft"
	recipeService "ajibaa/internal/core/recipe"
	"ajibaa/internal/core/recipe/cache"
	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// タイムアウト設定
	timeoutDuration = 30 * time.Second
	// ボディサイズ上限 (1MB)。下書きは小さい JSON だけを想定
	maxBodySize = 1 << 20
)

// Dependencies ルータが使うサービス群
type Dependencies struct {
	CacheManager *cache.CacheManager
	Snapshot     *cache.Snapshot
	DraftStore   *draftStore.Store
	AutoSaver    *draftStore.AutoSaver
}

// SetupRouter ルータを構築する
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// gin のモード設定
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// ルータ生成
	router := gin.New()

	// 基本ミドルウェア登録
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // リクエスト ID を自動生成

	// CORS 設定
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ボディサイズ制限
	router.Use(middleware.BodySizeLimit(maxBodySize))

	if deps.DraftStore == nil {
		common.LogError("Draft store is required")
		return nil, fmt.Errorf("draft store is required")
	}

	// レシピサービス初期化
	remote := recipeService.NewRemoteSource(cfg)
	recipeSvc := recipeService.NewService(cfg, remote, deps.Snapshot, deps.CacheManager)

	common.LogInfo("Services initialized",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("snapshot_enabled", cfg.Snapshot.Enabled),
		zap.Bool("source_enabled", cfg.Source.Enabled),
		zap.Duration("timeout", timeoutDuration),
	)

	// 全リクエスト共通：タイムアウトとコンテキスト注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("draft_store", deps.DraftStore)
		if deps.CacheManager != nil {
			c.Set("cache_stats", deps.CacheManager)
		}

		c.Next()

		// タイムアウト検査
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// ヘルスチェック
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API ルート
	api := router.Group("/api/v1")
	{
		recipes := recipeHandler.NewHandler(recipeSvc)

		recipeGroup := api.Group("/recipes")
		{
			// 検索・絞り込み・並び替え
			recipeGroup.GET("", recipes.HandleSearch)

			// 閲覧用の固定並び
			recipeGroup.GET("/latest", recipes.HandleLatest)
			recipeGroup.GET("/popular", recipes.HandlePopular)
			recipeGroup.GET("/most-liked", recipes.HandleMostLiked)

			// 関連レシピ
			recipeGroup.GET("/:id/related", recipes.HandleRelated)
		}

		statsGroup := api.Group("/stats")
		{
			statsGroup.GET("/prefectures", recipes.HandleStatsByPrefecture)
			statsGroup.GET("/categories", recipes.HandleStatsByCategory)
			statsGroup.GET("/tags", recipes.HandlePopularTags)
		}

		drafts := draftHandler.NewHandler(deps.DraftStore, deps.AutoSaver)

		draftGroup := api.Group("/drafts")
		if cfg.RateLimit.Enabled {
			draftGroup.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		draftGroup.Use(middleware.Deduplication(cfg))
		{
			draftGroup.GET("", drafts.HandleList)
			draftGroup.POST("", drafts.HandleCreate)
			draftGroup.PUT("/:id", drafts.HandleSave)
			draftGroup.GET("/:id", drafts.HandleLoad)
			draftGroup.DELETE("/:id", drafts.HandleDelete)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
