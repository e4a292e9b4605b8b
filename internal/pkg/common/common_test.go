package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeValidate(t *testing.T) {
	valid := Recipe{
		Title:       "りんご煮",
		CookingTime: 20,
		Tags:        []string{"おやつ"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Recipe)
	}{
		{"タイトルなし", func(r *Recipe) { r.Title = " " }},
		{"調理時間ゼロ", func(r *Recipe) { r.CookingTime = 0 }},
		{"調理時間が負", func(r *Recipe) { r.CookingTime = -5 }},
		{"いいね数が負", func(r *Recipe) { r.LikeCount = -1 }},
		{"空タグ", func(r *Recipe) { r.Tags = []string{"おやつ", "  "} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestIsValidPrefecture(t *testing.T) {
	assert.True(t, IsValidPrefecture("青森県"))
	assert.True(t, IsValidPrefecture("北海道"))
	assert.False(t, IsValidPrefecture("存在しない県"))
	assert.False(t, IsValidPrefecture(""))
	assert.Len(t, Prefectures, 47)
}

func TestParseJSON(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, ParseJSON(`{"title":"ザンギ"}`, &v))
	assert.Equal(t, "ザンギ", v["title"])

	// 壊れた JSON はエラー
	assert.Error(t, ParseJSON(`{"title":`, &v))

	// 余分なデータもエラー
	assert.Error(t, ParseJSON(`{"a":1}{"b":2}`, &v))
}

func TestParseJSONStrict(t *testing.T) {
	type target struct {
		Title string `json:"title"`
	}
	var v target
	require.NoError(t, ParseJSONStrict(`{"title":"せんべい汁"}`, &v))
	assert.Error(t, ParseJSONStrict(`{"title":"x","unknown":1}`, &v))
}

func TestGenerateDraftID(t *testing.T) {
	id := GenerateDraftID()
	assert.True(t, strings.HasPrefix(id, "draft_"))
	assert.NotEqual(t, id, GenerateDraftID())
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "家庭料理 郷土料理", FormatTags([]string{"家庭料理", "郷土料理"}))
}
