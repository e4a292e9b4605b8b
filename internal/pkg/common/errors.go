package common

import (
	"net/http"
)

// ErrorResponse API エラー応答
type ErrorResponse struct {
	Code    string `json:"code"`              // エラーコード
	Message string `json:"message"`           // エラーメッセージ
	Details string `json:"details,omitempty"` // 詳細（開発モードのみ）
}

// CustomError 独自エラー型
type CustomError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
	Err     error  // 元のエラー
	Status  int    // HTTP ステータスコード
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 独自エラーを生成
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 検証エラー
type ValidationError struct {
	message string
}

// Error error インターフェースを実装
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 検証エラーを生成
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 検証エラーかどうか
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// エラーコード定義
const (
	// クライアントエラー (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeForbidden        = "FORBIDDEN"          // 403
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// サーバエラー (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeNotImplemented     = "NOT_IMPLEMENTED"     // 501
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 定義済みエラー
var (
	// クライアントエラー
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "無効なリクエストです", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "認証が必要です", http.StatusUnauthorized, nil)
	ErrForbidden        = NewError(ErrCodeForbidden, "アクセスが禁止されています", http.StatusForbidden, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "リソースが見つかりません", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "許可されていないメソッドです", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "リクエストがタイムアウトしました", http.StatusRequestTimeout, nil)
	ErrConflict         = NewError(ErrCodeConflict, "リソースが競合しています", http.StatusConflict, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "リクエストが多すぎます", http.StatusTooManyRequests, nil)

	// サーバエラー
	ErrInternalError      = NewError(ErrCodeInternalError, "サーバ内部エラーです", http.StatusInternalServerError, nil)
	ErrNotImplemented     = NewError(ErrCodeNotImplemented, "未実装の機能です", http.StatusNotImplemented, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "サービスが一時的に利用できません", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "ゲートウェイがタイムアウトしました", http.StatusGatewayTimeout, nil)

	// 業務エラー
	ErrRecipeNotFound    = NewError("RECIPE_NOT_FOUND", "レシピが見つかりません", http.StatusNotFound, nil)
	ErrCacheFull         = NewError("CACHE_FULL", "キャッシュが満杯です", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled     = NewError("CACHE_DISABLED", "キャッシュが無効です", http.StatusServiceUnavailable, nil)
	ErrSourceUnavailable = NewError("SOURCE_UNAVAILABLE", "レシピ取得元に接続できません", http.StatusServiceUnavailable, nil)
)
