package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 全体で共有するロガー。InitLogger までは何も出力しない
	Logger  = zap.NewNop()
	LogMode string // 宣言のみ、初期化は InitLogger で

	// ログレベルごとの表示色
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // シアン
		zapcore.InfoLevel:  "\033[32m", // 緑
		zapcore.WarnLevel:  "\033[33m", // 黄
		zapcore.ErrorLevel: "\033[31m", // 赤
		zapcore.FatalLevel: "\033[35m", // 紫
	}
	resetColor = "\033[0m"
)

// エンコーダ設定
func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "", // ロガー名は出さない
		CallerKey:      "", // 呼び出し元情報は出さない
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

// 時刻フォーマット（ミリ秒まで）
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// レベル表示（色付き・3 文字固定）
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// InitLogger ログ基盤を初期化
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	// LOG_MODE は .env 読み込み後に参照する
	LogMode = os.Getenv("LOG_MODE")

	// ログディレクトリを作成
	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "ajibaa"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// LogInfo 情報ログ
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" {
		// concise モードではリクエスト完了と起動・終了メッセージのみ出力
		if msg != "リクエスト完了" && msg != "アプリ起動" && msg != "Server exited" && msg != "Shutting down server..." {
			return
		}
	}
	Logger.Info(msg, filterDraftPayloads(fields)...)
}

// LogError エラーログ
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, filterDraftPayloads(fields)...)
}

// LogWarn 警告ログ
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, filterDraftPayloads(fields)...)
}

// LogDebug デバッグログ
func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, filterDraftPayloads(fields)...)
}

// LogFatal 致命的エラーログ
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// 下書き本文はユーザの編集中データなのでログに残さない
func filterDraftPayloads(fields []zap.Field) []zap.Field {
	filtered := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if field.Key == "draft_data" || strings.Contains(field.Key, "payload") {
			continue
		}
		filtered = append(filtered, field)
	}
	return filtered
}

// Sync ログバッファを書き出す
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit キャッシュヒット
func LogCacheHit(cacheType, key string) {
	LogInfo("キャッシュヒット", zap.String("種類", cacheType))
}

// LogCacheMiss キャッシュミス
func LogCacheMiss(cacheType, key string) {
	LogInfo("キャッシュミス", zap.String("種類", cacheType))
}

// LogSearch 検索実行の記録
func LogSearch(query string, hits int, duration time.Duration) {
	LogInfo("検索実行",
		zap.Int("件数", hits),
		zap.Duration("所要時間", duration),
	)
}
