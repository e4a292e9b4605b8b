package search

import (
	"sync"

	"ajibaa/internal/pkg/common"
)

// Run 検索パイプラインを 1 回実行する
// テキスト検索 → ファセット絞り込み → 並べ替え。全段が純粋な集合演算なので
// 同じ入力に対しては常に同じ結果を返す。
func Run(recipes []common.Recipe, filters Filters) []common.Recipe {
	matched := SearchRecipes(recipes, filters.Query)
	matched = ApplyFacets(matched, filters)
	return SortRecipes(matched, filters.SortKey)
}

// Subscriber 結果の購読者
type Subscriber func(results []common.Recipe)

// Orchestrator 検索状態の唯一の所有者
// クエリ・ファセット・元データのいずれかが変わるたびに同期的に再計算し、
// 登録済みの購読者へ結果を配信する。レシピ集合そのものは外部（永続化
// コラボレータ）の所有物で、ここでは参照を保持するだけ。
type Orchestrator struct {
	mu          sync.RWMutex
	recipes     []common.Recipe
	filters     Filters
	results     []common.Recipe
	subscribers []Subscriber
}

// NewOrchestrator 生成
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		filters: Filters{SortKey: SortLatest},
	}
}

// SetRecipes 元データの差し替え。再計算して配信する
func (o *Orchestrator) SetRecipes(recipes []common.Recipe) {
	o.mu.Lock()
	o.recipes = recipes
	results, subs := o.recomputeLocked()
	o.mu.Unlock()

	publish(subs, results)
}

// UpdateFilters 検索条件の更新。再計算して配信する
func (o *Orchestrator) UpdateFilters(filters Filters) {
	o.mu.Lock()
	o.filters = filters
	results, subs := o.recomputeLocked()
	o.mu.Unlock()

	publish(subs, results)
}

// Filters 現在の検索条件
func (o *Orchestrator) Filters() Filters {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.filters
}

// Results 最後に計算した結果
func (o *Orchestrator) Results() []common.Recipe {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.results
}

// Subscribe 購読者を登録し、現在の結果を即時配信する
func (o *Orchestrator) Subscribe(fn Subscriber) {
	o.mu.Lock()
	o.subscribers = append(o.subscribers, fn)
	results := o.results
	o.mu.Unlock()

	fn(results)
}

// recomputeLocked ロック保持中に再計算する。購読者の呼び出しはロック外で行う
func (o *Orchestrator) recomputeLocked() ([]common.Recipe, []Subscriber) {
	o.results = Run(o.recipes, o.filters)
	subs := make([]Subscriber, len(o.subscribers))
	copy(subs, o.subscribers)
	return o.results, subs
}

func publish(subs []Subscriber, results []common.Recipe) {
	for _, fn := range subs {
		fn(results)
	}
}
