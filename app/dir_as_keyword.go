package app

import (
	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
	"github.com/craftgear/group-files-into-dirs/pkg/mover"
)

// RunDirAsKeyword 用已有子目录的名字作为关键字，把匹配的文件移进对应目录。
// 不会创建新目录。
func (r *Runner) RunDirAsKeyword(base string) (*mover.Result, error) {
	dirs, err := r.scanner().Dirs(base)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, internal.ErrNoKeywordsFound
	}

	targets := make([]mover.Target, 0, len(dirs))
	for _, dir := range dirs {
		patterns := r.Extractor.DirPatterns(dir)
		logger.Get().Debug().Str("dir", dir).Int("patterns", len(patterns)).Msg("目录关键字")
		targets = append(targets, mover.Target{Dir: dir, Patterns: patterns})
	}

	files, err := r.scanner().Files(base)
	if err != nil {
		return nil, err
	}

	return r.mover().MoveToTargets(base, files, targets)
}
