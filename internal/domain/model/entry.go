package model

import (
	"time"

	"github.com/goccy/go-json"
)

// DateLayout 是样例数据写入 date 字段时使用的格式（本地时间，无时区，微秒精度）。
const DateLayout = "2006-01-02T15:04:05.000000"

// dateLayouts 是解析 date 字段时依次尝试的格式。
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Entry 表示排行榜中的一条记录。
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Date  string `json:"date"`

	// 游戏端附带的扩展数据，原样保留，不参与去重和排序。
	Browser  json.RawMessage `json:"browser,omitempty"`
	Location json.RawMessage `json:"location,omitempty"`
}

// EntryKey 是记录的去重键。
type EntryKey struct {
	Name  string
	Score int
	Date  string
}

// NewEntry 创建一条记录，date 取 at 的时间。
func NewEntry(name string, score, level int, at time.Time) Entry {
	return Entry{
		Name:  name,
		Score: score,
		Level: level,
		Date:  at.Format(DateLayout),
	}
}

// Key 返回记录的去重键。
func (e Entry) Key() EntryKey {
	return EntryKey{Name: e.Name, Score: e.Score, Date: e.Date}
}

// Time 解析 date 字段。
func (e Entry) Time() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate 返回 DD/MM/YYYY 格式的日期，无法解析时原样返回。
func (e Entry) DisplayDate() string {
	t, ok := e.Time()
	if !ok {
		return e.Date
	}
	return t.Format("02/01/2006")
}
