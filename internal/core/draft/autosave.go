package draft

import (
	"sync"
	"time"

	"ajibaa/internal/pkg/common"

	"go.uber.org/zap"
)

// AutoSaver 下書きの定期保存
// 呼び出し側が編集内容を Queue で渡し、一定間隔ごとに保留分をまとめて
// 保存する。タイマー保存と明示保存はどちらも同じ Save を呼ぶだけで、
// 意味論上の違いはない。同一 id への競合は最後の書き込みが勝つ。
type AutoSaver struct {
	store    *Store
	interval time.Duration

	mu      sync.Mutex
	pending map[string]Data

	done      chan struct{}
	closeOnce sync.Once
}

// NewAutoSaver 生成して保存ループを開始する
func NewAutoSaver(store *Store, interval time.Duration) *AutoSaver {
	a := &AutoSaver{
		store:    store,
		interval: interval,
		pending:  make(map[string]Data),
		done:     make(chan struct{}),
	}

	go a.run()

	common.LogInfo("自動保存を開始しました",
		zap.Duration("間隔", interval),
	)

	return a
}

// Queue 編集内容を保留する。次の周期で保存される
func (a *AutoSaver) Queue(id string, data Data) {
	a.mu.Lock()
	a.pending[id] = data
	a.mu.Unlock()
}

// Discard 保留中の編集内容を取り下げる（公開成功や明示破棄の後に呼ぶ）
func (a *AutoSaver) Discard(id string) {
	a.mu.Lock()
	delete(a.pending, id)
	a.mu.Unlock()
}

// Flush 保留中の編集内容をすべて保存する
func (a *AutoSaver) Flush() {
	a.mu.Lock()
	batch := a.pending
	a.pending = make(map[string]Data)
	a.mu.Unlock()

	for id, data := range batch {
		a.store.Save(id, data)
	}

	if len(batch) > 0 {
		common.LogDebug("自動保存を実行しました",
			zap.Int("件数", len(batch)),
		)
	}
}

// Close 保存ループを止める。残っている保留分は最後に書き出す
func (a *AutoSaver) Close() {
	a.closeOnce.Do(func() {
		close(a.done)
		a.Flush()
	})
}

func (a *AutoSaver) run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.Flush()
		case <-a.done:
			return
		}
	}
}
