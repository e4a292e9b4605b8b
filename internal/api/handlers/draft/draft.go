package draft

import (
	"net/http"

	draftStore "ajibaa/internal/core/draft"
	"ajibaa/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 下書きハンドラ
// 保存・削除はストアの契約どおり失敗してもエラーにしない。
// クライアントは応答コードではなく後続の取得で結果を確認する。
type Handler struct {
	store *draftStore.Store
	saver *draftStore.AutoSaver
}

// NewHandler ハンドラを生成
// saver が nil なら自動保存キューは使わず即時保存のみ。
func NewHandler(store *draftStore.Store, saver *draftStore.AutoSaver) *Handler {
	return &Handler{
		store: store,
		saver: saver,
	}
}

// SaveRequest 下書き保存リクエスト
type SaveRequest struct {
	Data     draftStore.Data `json:"data" binding:"required"`
	Deferred bool            `json:"deferred,omitempty"` // true なら自動保存キューへ
}

// HandleCreate 新しい下書き ID を払い出して保存する
func (h *Handler) HandleCreate(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "リクエストボディが不正です",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	id := common.GenerateDraftID()
	h.store.Save(id, req.Data)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// HandleSave 下書きを保存する（同一 ID は全置換）
func (h *Handler) HandleSave(c *gin.Context) {
	id := c.Param("id")
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "リクエストボディが不正です",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if req.Deferred && h.saver != nil {
		h.saver.Queue(id, req.Data)
		c.JSON(http.StatusAccepted, gin.H{"id": id, "queued": true})
		return
	}

	h.store.Save(id, req.Data)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// HandleLoad 下書きを読み込む
func (h *Handler) HandleLoad(c *gin.Context) {
	id := c.Param("id")

	saved := h.store.Load(id)
	if saved == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "下書きが見つかりません",
			"code":  common.ErrCodeNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// HandleDelete 下書きを削除する（存在しなくても成功）
func (h *Handler) HandleDelete(c *gin.Context) {
	id := c.Param("id")

	if h.saver != nil {
		h.saver.Discard(id)
	}
	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

// HandleList 全下書きを新しい順に返す
func (h *Handler) HandleList(c *gin.Context) {
	drafts := h.store.ListAll()
	c.JSON(http.StatusOK, gin.H{
		"drafts": drafts,
		"total":  len(drafts),
	})
}
