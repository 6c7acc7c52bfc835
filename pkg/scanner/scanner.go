package scanner

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
)

// Scanner 列出基础目录的直接子项（不递归）
type Scanner struct {
	Fs afero.Fs
}

func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{Fs: fs}
}

// Files 返回普通文件的名称，跳过以 "." 开头的隐藏项
func (s *Scanner) Files(base string) ([]string, error) {
	return s.list(base, func(info os.FileInfo) bool {
		return info.Mode().IsRegular()
	})
}

// Dirs 返回子目录的名称，跳过以 "." 开头的隐藏项
func (s *Scanner) Dirs(base string) ([]string, error) {
	return s.list(base, func(info os.FileInfo) bool {
		return info.IsDir()
	})
}

func (s *Scanner) list(base string, keep func(os.FileInfo) bool) ([]string, error) {
	entries, err := afero.ReadDir(s.Fs, base)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("读取目录失败: %s", base)
		return nil, internal.IOError("read dir", base, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !keep(entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	logger.Get().Debug().Msgf("扫描目录: %s，共 %d 项", base, len(names))
	return names, nil
}
