package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/mover"
)

// ParseKeywords 按逗号拆分 --keywords 的值，每个关键字至少 2 个字符，
// 并且必须能作为基础目录下的单层目录名
func ParseKeywords(raw string) ([]string, error) {
	keywords := strings.Split(raw, ",")

	for _, k := range keywords {
		if utf8.RuneCountInString(k) < internal.MinKeywordLength {
			return nil, fmt.Errorf("%w: keyword length must be at least %d characters",
				internal.ErrKeywordLength, internal.MinKeywordLength)
		}
		if !isDirName(k) {
			return nil, fmt.Errorf("%w: keyword %q cannot be used as a directory name",
				internal.ErrKeywordLength, k)
		}
	}

	if len(keywords) == 0 {
		return nil, internal.ErrNoKeywordsFound
	}
	return keywords, nil
}

// ".." 或带路径分隔符的关键字会让文件移出基础目录
func isDirName(k string) bool {
	if k == "." || k == ".." {
		return false
	}
	return !strings.ContainsRune(k, '/') && !strings.ContainsRune(k, filepath.Separator)
}

// RunExplicit 使用命令行给出的关键字移动文件，目录在第一次匹配时创建
func (r *Runner) RunExplicit(base, raw string) (*mover.Result, error) {
	keywords, err := ParseKeywords(raw)
	if err != nil {
		return nil, err
	}

	files, err := r.scanner().Files(base)
	if err != nil {
		return nil, err
	}

	return r.mover().Move(base, files, keywords)
}
