package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ajibaa/internal/api"
	"ajibaa/internal/core/draft"
	"ajibaa/internal/core/recipe/cache"
	"ajibaa/internal/infrastructure/config"
	"ajibaa/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env を読み込む
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 設定を読み込む
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// logger 初期化（config 読み込み後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("設定読み込み完了",
		zap.Bool("source_enabled", cfg.Source.Enabled),
		zap.String("draft_path", cfg.Draft.Path),
	)

	// 検索結果キャッシュ初期化
	cacheManager := cache.NewManager(cfg)
	// キャッシュ有効なのに初期化できない場合のみ Fatal
	if cfg.Cache.Enabled && cacheManager == nil {
		common.LogFatal("Failed to initialize cache manager")
	}
	defer cacheManager.Close()

	// スナップショット初期化（無効なら nil のまま進む）
	var snapshot *cache.Snapshot
	if cfg.Snapshot.Enabled {
		snapshot, err = cache.NewSnapshot(&cfg.Snapshot)
		if err != nil {
			common.LogWarn("スナップショット接続に失敗、無効化して続行", zap.Error(err))
			snapshot = nil
		} else {
			defer snapshot.Close()
		}
	}

	// 下書きストア初期化
	store, err := draft.Open(cfg.Draft.Path)
	if err != nil {
		common.LogFatal("Failed to open draft store", zap.Error(err))
	}
	defer store.Close()

	// 自動保存
	saver := draft.NewAutoSaver(store, cfg.Draft.AutosaveInterval)
	defer saver.Close()

	// ルータ構築
	router, err := api.SetupRouter(cfg, api.Dependencies{
		CacheManager: cacheManager,
		Snapshot:     snapshot,
		DraftStore:   store,
		AutoSaver:    saver,
	})
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// HTTP サーバ設定
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// サーバ起動
	go func() {
		common.LogInfo("アプリ起動",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 割り込みシグナルを待つ
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// シャットダウンのタイムアウト
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
