package model

import (
	"sort"
	"time"
)

// Ranking 是按分数从高到低排列的记录序列。
type Ranking []Entry

func (r Ranking) Len() int           { return len(r) }
func (r Ranking) Less(i, j int) bool { return r[i].Score > r[j].Score }
func (r Ranking) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// Merge 合并已有记录和新记录。
// 按 (name, score, date) 去重，先出现者保留（先扫描 existing 再扫描 incoming），
// 然后按分数降序排列。不修改入参。
func Merge(existing, incoming Ranking) Ranking {
	merged := make(Ranking, 0, len(existing)+len(incoming))
	seen := make(map[EntryKey]struct{}, len(existing)+len(incoming))

	for _, batch := range []Ranking{existing, incoming} {
		for _, e := range batch {
			key := e.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, e)
		}
	}

	// 同分记录保持扫描顺序
	sort.Stable(merged)
	return merged
}

// Top 返回前 n 条记录以及剩余的条数。
func (r Ranking) Top(n int) (Ranking, int) {
	if n < 0 {
		n = 0
	}
	n = min(n, len(r))
	top := make(Ranking, n)
	copy(top, r[:n])
	return top, len(r) - n
}

// SampleEntries 生成用于手工测试的样例数据，date 均为 now。
func SampleEntries(now time.Time) Ranking {
	return Ranking{
		NewEntry("Bolheiro123", 15420, 8, now),
		NewEntry("Ninja456", 12350, 6, now),
		NewEntry("Mestre789", 18900, 10, now),
	}
}
