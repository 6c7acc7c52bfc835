// Package keywords 从文件名中提取候选关键字，统计次数并排序
package keywords

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/camelcase"
)

var (
	extRegex = regexp.MustCompile(`\.[A-Za-z0-9]+$`)

	// 非贪婪匹配，不同种类的括号在捕获内容中按字面保留
	bracketRegex = regexp.MustCompile(`\((.+?)\)|\[(.+?)\]|\{(.+?)\}`)
)

// Delimiters 用于拆分括号之外的文本
const Delimiters = ",-_ "

type Extractor struct {
	// SplitCamelCase 额外按大小写和数字边界拆分分隔符得到的词
	SplitCamelCase bool
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// StripExtension 去掉末尾的一个 ".xxxx" 扩展名
func StripExtension(name string) string {
	return extRegex.ReplaceAllString(name, "")
}

// Extract 返回一个文件名的候选关键字：先是按顺序的括号内容，再是按分隔符拆出的词。
// 重复的保留，只有一个字符的丢弃
func (e *Extractor) Extract(filename string) []string {
	name := StripExtension(filename)

	var keywords []string
	for _, m := range bracketRegex.FindAllStringSubmatch(name, -1) {
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if isKeyword(group) {
				keywords = append(keywords, group)
			}
			break
		}
	}

	rest := bracketRegex.ReplaceAllString(name, "")
	tokens := strings.FieldsFunc(rest, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
	for _, token := range tokens {
		if e.SplitCamelCase {
			for _, part := range camelcase.Split(token) {
				if isKeyword(part) {
					keywords = append(keywords, part)
				}
			}
			continue
		}
		if isKeyword(token) {
			keywords = append(keywords, token)
		}
	}

	return keywords
}

// 按 Unicode 字符数计算，多字节文件名也适用
func isKeyword(s string) bool {
	return utf8.RuneCountInString(s) > 1
}
