package search

import (
	"testing"

	"ajibaa/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPipeline(t *testing.T) {
	// 検索 → ファセット → ソートの順で適用される
	result := Run(testRecipes(), Filters{
		Query:      "郷土料理",
		Prefecture: "青森県",
		SortKey:    SortLatest,
	})
	require.Len(t, result, 1)
	assert.Equal(t, "r2", result[0].ID)
}

func TestRunDeterministic(t *testing.T) {
	filters := Filters{Query: "りんご", SortKey: SortPopular}
	recipes := testRecipes()

	first := Run(recipes, filters)
	second := Run(recipes, filters)
	assert.Equal(t, first, second)
}

func TestOrchestratorDefaultSort(t *testing.T) {
	o := NewOrchestrator()
	assert.Equal(t, SortLatest, o.Filters().SortKey)
}

func TestOrchestratorSetRecipesRecomputes(t *testing.T) {
	o := NewOrchestrator()
	o.SetRecipes(testRecipes())

	results := o.Results()
	require.Len(t, results, 3)
	// デフォルトは新着順
	assert.Equal(t, "r3", results[0].ID)
}

func TestOrchestratorUpdateFiltersNotifiesSubscribers(t *testing.T) {
	o := NewOrchestrator()
	o.SetRecipes(testRecipes())

	var delivered [][]common.Recipe
	o.Subscribe(func(results []common.Recipe) {
		delivered = append(delivered, results)
	})

	// 登録時に現在の結果が即時配信される
	require.Len(t, delivered, 1)
	assert.Len(t, delivered[0], 3)

	o.UpdateFilters(Filters{Query: "りんご"})
	require.Len(t, delivered, 2)
	require.Len(t, delivered[1], 1)
	assert.Equal(t, "r3", delivered[1][0].ID)
}

func TestOrchestratorFiltersRoundTrip(t *testing.T) {
	o := NewOrchestrator()
	filters := Filters{Query: "せんべい", Prefecture: "青森県", SortKey: SortCookingTime}
	o.UpdateFilters(filters)
	assert.Equal(t, filters, o.Filters())
}
