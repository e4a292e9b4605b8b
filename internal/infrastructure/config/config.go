package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config アプリ設定
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Source      SourceConfig    `mapstructure:"source"`
	Search      SearchConfig    `mapstructure:"search"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Snapshot    SnapshotConfig  `mapstructure:"snapshot"`
	Draft       DraftConfig     `mapstructure:"draft"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig アプリケーション設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig サーバ設定
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SourceConfig レシピ取得元（永続化バックエンド）設定
type SourceConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchConfig 検索設定
type SearchConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// CacheConfig 検索結果キャッシュ（インメモリ）設定
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// SnapshotConfig 公開レシピスナップショット（Redis）設定
type SnapshotConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// DraftConfig 下書きストア設定
type DraftConfig struct {
	Path             string        `mapstructure:"path"`
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
}

// RateLimitConfig レート制限設定
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 設定を読み込む
func LoadConfig() (*Config, error) {
	// .env があれば読み込む（無くても続行）
	_ = godotenv.Load()

	// デフォルト値
	setDefaults()

	// 環境変数プレフィックス
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 環境変数バインド
	viper.BindEnv("source.base_url", "SOURCE_BASE_URL")
	viper.BindEnv("source.enabled", "SOURCE_ENABLED")
	viper.BindEnv("snapshot.addr", "REDIS_ADDR")
	viper.BindEnv("snapshot.enabled", "SNAPSHOT_ENABLED")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("draft.path", "DRAFT_DB_PATH")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定ファイル
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults デフォルト値を設定
func setDefaults() {
	// アプリケーション
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "ajibaa")

	// サーバ
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// レシピ取得元
	viper.SetDefault("source.enabled", false)
	viper.SetDefault("source.base_url", "http://localhost:3210")
	viper.SetDefault("source.timeout", "10s")

	// 検索
	viper.SetDefault("search.default_limit", 20)
	viper.SetDefault("search.max_limit", 100)

	// 結果キャッシュ
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// スナップショット
	viper.SetDefault("snapshot.enabled", false)
	viper.SetDefault("snapshot.addr", "localhost:6379")
	viper.SetDefault("snapshot.password", "")
	viper.SetDefault("snapshot.db", 0)
	viper.SetDefault("snapshot.ttl", "10m")

	// 下書き
	viper.SetDefault("draft.path", "data/drafts.db")
	viper.SetDefault("draft.autosave_interval", "30s")

	// レート制限
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 重複検知ウィンドウ
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 設定を検証
func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	if config.Source.Enabled && config.Source.BaseURL == "" {
		return fmt.Errorf("source base url is required")
	}

	if config.Draft.Path == "" {
		return fmt.Errorf("draft db path is required")
	}
	if config.Draft.AutosaveInterval <= 0 {
		return fmt.Errorf("invalid draft autosave interval")
	}

	if config.Search.DefaultLimit <= 0 || config.Search.MaxLimit < config.Search.DefaultLimit {
		return fmt.Errorf("invalid search limits")
	}

	return nil
}
