package draft

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	draftStore "ajibaa/internal/core/draft"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *draftStore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := draftStore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler := NewHandler(store, nil)

	router := gin.New()
	router.GET("/drafts", handler.HandleList)
	router.POST("/drafts", handler.HandleCreate)
	router.PUT("/drafts/:id", handler.HandleSave)
	router.GET("/drafts/:id", handler.HandleLoad)
	router.DELETE("/drafts/:id", handler.HandleDelete)

	return router, store
}

func TestHandleSaveAndLoad(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := `{"data":{"title":"りんご煮","prefecture":"青森県"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/drafts/d1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/drafts/d1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var saved draftStore.SavedDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "d1", saved.ID)
	assert.Equal(t, "りんご煮", saved.Data["title"])
	assert.Greater(t, saved.SavedAt, int64(0))
}

func TestHandleSaveInvalidBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/drafts/d1", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLoadMissing(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/drafts/missing", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateAssignsID(t *testing.T) {
	router, store := setupTestRouter(t)

	body := `{"data":{"title":"新しい下書き"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ID, "draft_"))
	assert.NotNil(t, store.Load(resp.ID))
}

func TestHandleDeleteIdempotent(t *testing.T) {
	router, store := setupTestRouter(t)

	store.Save("d1", draftStore.Data{"title": "消す"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/drafts/d1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, store.Load("d1"))

	// 存在しない id でも成功
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/drafts/d1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleListNewestFirst(t *testing.T) {
	router, store := setupTestRouter(t)

	store.Save("a", draftStore.Data{"title": "1"})
	store.Save("b", draftStore.Data{"title": "2"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/drafts", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Drafts []draftStore.SavedDraft `json:"drafts"`
		Total  int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Drafts, 2)
	assert.GreaterOrEqual(t, resp.Drafts[0].SavedAt, resp.Drafts[1].SavedAt)
}
