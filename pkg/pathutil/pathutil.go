// Package pathutil 把命令行的 <path> 参数转换成可用的基础目录
package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
)

// Normalize 清理命令行传入的路径并确认它是一个存在的目录
func Normalize(fs afero.Fs, raw string) (string, error) {
	return normalize(fs, raw, runtime.GOOS)
}

func normalize(fs afero.Fs, raw, goos string) (string, error) {
	path := raw

	// Windows 上以 `\` 结尾的带引号参数会把末尾的引号留在参数里
	if goos == "windows" {
		path = strings.TrimSuffix(path, `"`)
	}

	path, err := expandHome(path)
	if err != nil {
		return "", internal.IOError("expand", raw, err)
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return "", internal.IOError("resolve", raw, err)
	}

	isDir, err := afero.IsDir(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", internal.IOError("stat", path, os.ErrNotExist)
		}
		return "", internal.IOError("stat", path, err)
	}
	if !isDir {
		return "", internal.IOError("stat", path, errors.New("not a directory"))
	}

	logger.Get().Debug().Str("raw", raw).Str("path", path).Msg("路径已解析")
	return path, nil
}

func expandHome(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
