package common

import "strings"

// Recipe レシピ
// 永続化コラボレータ（リモートバックエンド）が所有する読み取り専用モデル。
// 検索・絞り込みコアはこの構造体を不変の入力として扱う。
type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Story       string             `json:"story,omitempty"` // おばあちゃんの思い出話
	AuthorID    string             `json:"author_id"`
	AuthorName  string             `json:"author_name,omitempty"`
	Prefecture  string             `json:"prefecture"`
	Category    string             `json:"category"` // 主食、副菜、汁物、おやつ・デザート等
	CookingTime int                `json:"cooking_time"` // 分
	Season      []string           `json:"season,omitempty"` // 春、夏、秋、冬、通年
	Tags        []string           `json:"tags,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty"`
	Steps       []RecipeStep       `json:"steps,omitempty"`
	IsPublished bool               `json:"is_published"`
	ViewCount   int                `json:"view_count"`
	LikeCount   int                `json:"like_count"`
	CreatedAt   int64              `json:"created_at"` // epoch ミリ秒
	UpdatedAt   int64              `json:"updated_at"`
}

// RecipeIngredient レシピの材料
type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
	Note   string `json:"note,omitempty"`
	Order  int    `json:"order"`
}

// RecipeStep レシピの手順
type RecipeStep struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	ImageURL    string `json:"image_url,omitempty"`
	Tips        string `json:"tips,omitempty"`
}

// Validate レシピの不変条件を検証
// cookingTime > 0、カウントは非負、タグはトリム後に空でないこと。
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return NewValidationError("タイトルは必須です")
	}
	if r.CookingTime <= 0 {
		return NewValidationError("調理時間は正の整数である必要があります")
	}
	if r.ViewCount < 0 || r.LikeCount < 0 {
		return NewValidationError("閲覧数・いいね数は負にできません")
	}
	for _, tag := range r.Tags {
		if strings.TrimSpace(tag) == "" {
			return NewValidationError("空のタグは許可されません")
		}
	}
	return nil
}

// Seasons 季節の列挙
var Seasons = []string{"春", "夏", "秋", "冬", "通年"}

// Categories カテゴリの列挙
var Categories = []string{
	"主食",
	"ご飯もの",
	"副菜",
	"汁物",
	"鍋もの",
	"麺類",
	"おやつ・デザート",
	"保存食・漬物",
}

// Prefectures 47 都道府県
var Prefectures = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// IsValidPrefecture 都道府県名かどうか
// 未知の値はエラーではなく 0 件マッチとして扱うため、検証は任意利用。
func IsValidPrefecture(name string) bool {
	for _, p := range Prefectures {
		if p == name {
			return true
		}
	}
	return false
}

// FormatTags タグ列を検索用に空白結合する
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, " ")
}
