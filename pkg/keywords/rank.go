package keywords

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Ranked 是选择界面中的一行
type Ranked struct {
	Keyword string
	Count   int
}

// Rank 按 次数(降序)、编码长度(降序)、小写首字符(升序) 排序，
// 最后按关键字本身比较，结果与 map 的遍历顺序无关。
//
// 长度是 UTF-8 字节数：次数相同时，两个字的日文关键字排在四个字母的英文关键字前面。
func Rank(h Histogram) []Ranked {
	ranked := make([]Ranked, 0, len(h))
	for k, c := range h {
		ranked = append(ranked, Ranked{Keyword: k, Count: c})
	}

	slices.SortFunc(ranked, compareRanked)
	return ranked
}

func compareRanked(a, b Ranked) int {
	if a.Count != b.Count {
		return b.Count - a.Count
	}
	if len(a.Keyword) != len(b.Keyword) {
		return len(b.Keyword) - len(a.Keyword)
	}
	if fa, fb := firstLower(a.Keyword), firstLower(b.Keyword); fa != fb {
		return int(fa) - int(fb)
	}
	return strings.Compare(a.Keyword, b.Keyword)
}

func firstLower(s string) rune {
	r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
	return r
}

// AtLeast 保留次数不少于 n 的项，顺序不变
func AtLeast(ranked []Ranked, n int) []Ranked {
	out := make([]Ranked, 0, len(ranked))
	for _, r := range ranked {
		if r.Count >= n {
			out = append(out, r)
		}
	}
	return out
}

// Keywords 去掉次数，只返回关键字
func Keywords(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Keyword
	}
	return out
}
