package recipe

import (
	"net/http"
	"strconv"
	"strings"

	recipeService "ajibaa/internal/core/recipe"
	"ajibaa/internal/core/search"
	"ajibaa/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler レシピ検索・閲覧ハンドラ
type Handler struct {
	service *recipeService.Service
}

// NewHandler ハンドラを生成
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// SearchResponse 検索応答
type SearchResponse struct {
	Recipes []common.Recipe `json:"recipes"`
	Total   int             `json:"total"`
	Filters search.Filters  `json:"filters"`
}

// HandleSearch 検索・絞り込み・並び替え
// クエリパラメータ:
//
//	q                キーワード（ひらがな・カタカナ同一視の部分一致）
//	prefecture       都道府県名（完全一致）
//	category         カテゴリ名（完全一致）
//	season           季節（レシピの季節集合に含まれれば一致）
//	tags             カンマ区切り。いずれかを含めば一致
//	cooking_time_max 調理時間の上限（分）
//	sort             latest / popular / mostLiked / cookingTime
//	limit            取得件数
func (h *Handler) HandleSearch(c *gin.Context) {
	filters := search.Filters{
		Query:      c.Query("q"),
		Prefecture: c.Query("prefecture"),
		Category:   c.Query("category"),
		Season:     c.Query("season"),
		SortKey:    search.ParseSortKey(c.Query("sort")),
	}

	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}

	if raw := c.Query("cooking_time_max"); raw != "" {
		maxTime, err := strconv.Atoi(raw)
		if err != nil || maxTime < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cooking_time_max は非負の整数で指定してください",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		filters.CookingTimeMax = maxTime
	}

	results, err := h.service.Search(c.Request.Context(), filters, parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Recipes: results,
		Total:   len(results),
		Filters: filters,
	})
}

// HandleLatest 新着レシピ
func (h *Handler) HandleLatest(c *gin.Context) {
	results, err := h.service.Latest(c.Request.Context(), parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": len(results)})
}

// HandlePopular 人気レシピ
func (h *Handler) HandlePopular(c *gin.Context) {
	results, err := h.service.Popular(c.Request.Context(), parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": len(results)})
}

// HandleMostLiked いいね順レシピ
func (h *Handler) HandleMostLiked(c *gin.Context) {
	results, err := h.service.MostLiked(c.Request.Context(), parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": len(results)})
}

// HandleRelated 関連レシピ
func (h *Handler) HandleRelated(c *gin.Context) {
	recipeID := c.Param("id")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "レシピ ID は必須です",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.service.Related(c.Request.Context(), recipeID, parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": len(results)})
}

// HandleStatsByPrefecture 都道府県別の件数
func (h *Handler) HandleStatsByPrefecture(c *gin.Context) {
	stats, err := h.service.StatsByPrefecture(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prefectures": stats})
}

// HandleStatsByCategory カテゴリ別の件数
func (h *Handler) HandleStatsByCategory(c *gin.Context) {
	stats, err := h.service.StatsByCategory(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": stats})
}

// HandlePopularTags 人気タグ
func (h *Handler) HandlePopularTags(c *gin.Context) {
	tags, err := h.service.PopularTags(c.Request.Context(), parseLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// parseLimit limit パラメータを解釈する（不正値は 0 = デフォルト扱い）
func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func handleServiceError(c *gin.Context, err error) {
	if customErr, ok := err.(*common.CustomError); ok {
		common.LogWarn("レシピサービスエラー",
			zap.String("code", customErr.Code),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(customErr.Status, gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		})
		return
	}

	common.LogError("レシピサービスエラー",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "内部エラーが発生しました",
		"code":  common.ErrCodeInternalError,
	})
}
