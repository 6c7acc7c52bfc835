package keywords

import (
	"fmt"
	"regexp"
)

// DirPattern 生成匹配关键字的正则，两侧各允许一个括号或分隔符
func DirPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`[\(\[\{\-_, ]?%s[\)\]\}\-_, ]?`, regexp.QuoteMeta(keyword)))
}

// DirPatterns 按文件名的规则从目录名中提取关键字，并为每个关键字生成 DirPattern
func (e *Extractor) DirPatterns(dirname string) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, k := range e.Extract(dirname) {
		if !isKeyword(k) {
			continue
		}
		patterns = append(patterns, DirPattern(k))
	}
	return patterns
}
