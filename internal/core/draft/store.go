package draft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"ajibaa/internal/pkg/common"

	"github.com/tidwall/buntdb"
	"go.uber.org/zap"
)

// KeyPrefix 下書きキーの名前空間
// 同じストレージに同居する無関係なキーと衝突しないための固定プレフィックス。
const KeyPrefix = "ajibaa_draft_"

// Data 編集中フォームの内容。スキーマは呼び出し側が所有し、ストアは関知しない
type Data map[string]interface{}

// SavedDraft 保存済み下書き
type SavedDraft struct {
	ID      string `json:"id"`
	Data    Data   `json:"data"`
	SavedAt int64  `json:"saved_at"` // epoch ミリ秒
}

// record ストレージ上の値の形
// 値は `{"data": ..., "savedAt": ...}` の JSON 1 エントリ。
type record struct {
	Data    Data  `json:"data"`
	SavedAt int64 `json:"savedAt"`
}

// Store 下書きストア
// 書き込み失敗は呼び出し側へ伝播させない。保存に失敗しても直前の状態が
// そのまま残るだけで、ページ描画を止める致命的条件は存在しない。
type Store struct {
	db     *buntdb.DB
	now    func() time.Time // テストで差し替える
	mu     sync.Mutex
	closed bool
}

// Open 下書きストアを開く
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
	}

	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:  db,
		now: time.Now,
	}, nil
}

// Close ストアを閉じる
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.db.Close()
}

// Closed 閉じられているか
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Save 下書きを保存する
// 同じ id への書き込みは全置換（マージしない）。ストレージ障害は記録するだけで
// エラーを返さない。失敗したかどうかは後続の Load でしか区別できない。
func (s *Store) Save(id string, data Data) {
	value, err := json.Marshal(record{
		Data:    data,
		SavedAt: s.now().UnixMilli(),
	})
	if err != nil {
		common.LogError("下書きの保存に失敗しました",
			zap.String("draft_id", id),
			zap.Error(err),
		)
		return
	}

	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(KeyPrefix+id, string(value), nil)
		return err
	})
	if err != nil {
		common.LogError("下書きの保存に失敗しました",
			zap.String("draft_id", id),
			zap.Error(err),
		)
	}
}

// Load 下書きを読み込む
// 存在しない場合と、保存値が壊れていて解釈できない場合はどちらも nil。
func (s *Store) Load(id string) *SavedDraft {
	var stored string
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(KeyPrefix + id)
		if err != nil {
			return err
		}
		stored = v
		return nil
	})
	if err != nil {
		if err != buntdb.ErrNotFound {
			common.LogError("下書きの読み込みに失敗しました",
				zap.String("draft_id", id),
				zap.Error(err),
			)
		}
		return nil
	}

	return parseRecord(id, stored)
}

// Delete 下書きを削除する。存在しない id への呼び出しは何もしない
func (s *Store) Delete(id string) {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(KeyPrefix + id)
		if err == buntdb.ErrNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		common.LogError("下書きの削除に失敗しました",
			zap.String("draft_id", id),
			zap.Error(err),
		)
	}
}

// ListAll すべての下書きを保存日時の降順で返す
// 名前空間プレフィックスを持たないキーは無視する。解釈できないエントリは
// 黙って読み飛ばす（Load と同じ破損耐性）。
func (s *Store) ListAll() []SavedDraft {
	drafts := make([]SavedDraft, 0)

	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(KeyPrefix+"*", func(key, value string) bool {
			id := strings.TrimPrefix(key, KeyPrefix)
			if d := parseRecord(id, value); d != nil {
				drafts = append(drafts, *d)
			}
			return true
		})
	})
	if err != nil {
		common.LogError("下書き一覧の取得に失敗しました", zap.Error(err))
		return []SavedDraft{}
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].SavedAt > drafts[j].SavedAt
	})
	return drafts
}

// parseRecord 保存値を解釈する。壊れた値は nil（存在しない扱い）
func parseRecord(id, stored string) *SavedDraft {
	var rec record
	if err := common.ParseJSON(stored, &rec); err != nil {
		common.LogWarn("解釈できない下書きを読み飛ばします",
			zap.String("draft_id", id),
		)
		return nil
	}
	return &SavedDraft{
		ID:      id,
		Data:    rec.Data,
		SavedAt: rec.SavedAt,
	}
}
