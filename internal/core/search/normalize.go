package search

import "strings"

// カタカナブロックはひらがなブロックの 0x60 上にある
const kanaOffset = 0x60

// NormalizeText 検索比較用の正規化
// ASCII 英大文字を小文字化し、全角カタカナ（ァ〜ヶ）を同音のひらがなへ畳み込む。
// 半角カナ・漢字・記号・他言語はそのまま。NFKC などの Unicode 正規化は行わない。
// 「りんご」と「リンゴ」がクエリ側・本文側どちらでも一致するための変換。
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		case r >= 'ァ' && r <= 'ヶ':
			sb.WriteRune(r - kanaOffset)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
