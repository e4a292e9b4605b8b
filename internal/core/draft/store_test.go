package draft

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	store.Save("d1", Data{"title": "りんご煮", "prefecture": "青森県"})

	loaded := store.Load("d1")
	require.NotNil(t, loaded)
	assert.Equal(t, "d1", loaded.ID)
	assert.Equal(t, "りんご煮", loaded.Data["title"])
	assert.Equal(t, "青森県", loaded.Data["prefecture"])
	assert.Greater(t, loaded.SavedAt, int64(0))
}

func TestStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Load("missing"))
}

func TestStoreSaveReplacesWhole(t *testing.T) {
	store := newTestStore(t)

	store.Save("d1", Data{"title": "古い", "category": "汁物"})
	// 同じ id への書き込みは全置換（マージしない）
	store.Save("d1", Data{"title": "新しい"})

	loaded := store.Load("d1")
	require.NotNil(t, loaded)
	assert.Equal(t, "新しい", loaded.Data["title"])
	assert.NotContains(t, loaded.Data, "category")
}

func TestStoreDeleteMissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	// 存在しない id の削除は何も起こさない
	store.Delete("missing")
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)

	store.Save("d1", Data{"title": "せんべい汁"})
	store.Delete("d1")
	assert.Nil(t, store.Load("d1"))
}

func TestStoreLoadCorruptRecord(t *testing.T) {
	store := newTestStore(t)

	// 壊れた値を直接書き込む
	err := store.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(KeyPrefix+"broken", "invalid-json{", nil)
		return err
	})
	require.NoError(t, err)

	// 存在しない扱いで nil
	assert.Nil(t, store.Load("broken"))
}

func TestStoreListAllNewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Now()
	clock := base
	store.now = func() time.Time { return clock }

	store.Save("old", Data{"title": "a"})
	clock = base.Add(time.Second)
	store.Save("mid", Data{"title": "b"})
	clock = base.Add(2 * time.Second)
	store.Save("new", Data{"title": "c"})

	drafts := store.ListAll()
	require.Len(t, drafts, 3)
	assert.Equal(t, "new", drafts[0].ID)
	assert.Equal(t, "mid", drafts[1].ID)
	assert.Equal(t, "old", drafts[2].ID)
}

func TestStoreListAllSkipsCorruptAndForeignKeys(t *testing.T) {
	store := newTestStore(t)

	store.Save("ok", Data{"title": "炊き込みご飯"})

	err := store.db.Update(func(tx *buntdb.Tx) error {
		// 壊れたエントリ
		if _, _, err := tx.Set(KeyPrefix+"broken", "not json", nil); err != nil {
			return err
		}
		// 名前空間外のキー
		_, _, err := tx.Set("other_app_key", `{"data":{},"savedAt":1}`, nil)
		return err
	})
	require.NoError(t, err)

	drafts := store.ListAll()
	require.Len(t, drafts, 1)
	assert.Equal(t, "ok", drafts[0].ID)
}

func TestStoreRecordFormat(t *testing.T) {
	store := newTestStore(t)

	fixed := time.UnixMilli(1700000000000)
	store.now = func() time.Time { return fixed }
	store.Save("d1", Data{"title": "ザンギ"})

	var stored string
	err := store.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(KeyPrefix + "d1")
		stored = v
		return err
	})
	require.NoError(t, err)

	// 保存形式は {"data":...,"savedAt":epoch ミリ秒}
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stored), &raw))
	assert.Contains(t, raw, "data")
	assert.Contains(t, raw, "savedAt")
	assert.Equal(t, "1700000000000", string(raw["savedAt"]))
}

func TestStoreClosed(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)

	assert.False(t, store.Closed())
	require.NoError(t, store.Close())
	assert.True(t, store.Closed())
}
