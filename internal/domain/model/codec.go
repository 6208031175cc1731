package model

import (
	"io"

	"github.com/goccy/go-json"
)

// EncodeRanking 以 JSON 数组写出排行榜：两个空格缩进，不转义非 ASCII 和 HTML 字符。
func EncodeRanking(w io.Writer, r Ranking) error {
	if r == nil {
		r = Ranking{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// DecodeRanking 解析 JSON 数组。null 视为空排行榜。
func DecodeRanking(data []byte) (Ranking, error) {
	var r Ranking
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r == nil {
		r = Ranking{}
	}
	return r, nil
}
