package mover

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/hasher"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
)

// Reporter 接收逐个文件的结果，对应 stdout 上的成功行和警告行
type Reporter interface {
	Moved(name, dst string)
	AlreadyMoved(name string)
	AlreadyExists(name string)
}

// Mover 把基础目录中的文件重命名到同级的关键字子目录中
type Mover struct {
	Fs       afero.Fs
	Verbose  bool
	Reporter Reporter
}

// Result 保存成功移动的目标路径，以及收到文件的目录（按首次收到的顺序）
type Result struct {
	Moved []string
	Dirs  []string
}

func (r *Result) add(dir, dst string) {
	r.Moved = append(r.Moved, dst)
	for _, d := range r.Dirs {
		if d == dir {
			return
		}
	}
	r.Dirs = append(r.Dirs, dir)
}

// Target 是一个已存在的目录以及把文件分到该目录的模式
type Target struct {
	Dir      string
	Patterns []*regexp.Regexp
}

type outcome int

const (
	moved outcome = iota
	sourceGone
	destExists
)

func New(fs afero.Fs, verbose bool, reporter Reporter) *Mover {
	return &Mover{Fs: fs, Verbose: verbose, Reporter: reporter}
}

// Move 按 文件(外层) × 关键字(内层) 的顺序处理。文件名（忽略大小写）包含关键字时，
// 移动到 base/<keyword>/<file>，目录在第一次匹配时才创建。
//
// 第一个成功的关键字获胜：文件移走后，后续关键字看到源文件已不存在，
// 报告 already moved 并跳到下一个文件。
// 目标已存在时报告 already exists 并尝试下一个关键字。
// 重命名失败是致命错误，已经移动的文件保持不动，部分结果与错误一起返回。
func (m *Mover) Move(base string, files, keywords []string) (*Result, error) {
	res := &Result{}

	for _, name := range files {
		lowerName := strings.ToLower(name)

		for _, keyword := range keywords {
			// 与关键字同名的项就是目标目录本身
			if name == keyword {
				continue
			}
			if !strings.Contains(lowerName, strings.ToLower(keyword)) {
				continue
			}

			// 源文件已移走时不能先创建目录，所以这里要在 ensureDir 之前检查
			exists, err := afero.Exists(m.Fs, filepath.Join(base, name))
			if err != nil {
				return res, internal.IOError("stat", filepath.Join(base, name), err)
			}
			if !exists {
				m.Reporter.AlreadyMoved(name)
				break
			}

			if err := m.ensureDir(base, keyword); err != nil {
				return res, err
			}

			out, err := m.relocate(base, name, keyword, res)
			if err != nil {
				return res, err
			}
			if out == sourceGone {
				break
			}
		}
	}

	return res, nil
}

// MoveToTargets 与 Move 的冲突规则相同，但用目录的模式匹配文件名，
// 并且从不创建目录。
func (m *Mover) MoveToTargets(base string, files []string, targets []Target) (*Result, error) {
	res := &Result{}

	for _, name := range files {
	nextFile:
		for _, target := range targets {
			for _, p := range target.Patterns {
				if !p.MatchString(name) {
					continue
				}

				out, err := m.relocate(base, name, target.Dir, res)
				if err != nil {
					return res, err
				}
				switch out {
				case sourceGone:
					break nextFile
				case destExists:
					continue
				}
			}
		}
	}

	return res, nil
}

// relocate 执行单个文件的 存在检查 → 冲突检查 → 重命名
func (m *Mover) relocate(base, name, dir string, res *Result) (outcome, error) {
	src := filepath.Join(base, name)
	dst := filepath.Join(base, dir, name)

	exists, err := afero.Exists(m.Fs, src)
	if err != nil {
		return sourceGone, internal.IOError("stat", src, err)
	}
	if !exists {
		m.Reporter.AlreadyMoved(name)
		return sourceGone, nil
	}

	exists, err = afero.Exists(m.Fs, dst)
	if err != nil {
		return destExists, internal.IOError("stat", dst, err)
	}
	if exists {
		m.Reporter.AlreadyExists(name)
		m.logCollision(src, dst)
		return destExists, nil
	}

	if err := m.Fs.Rename(src, dst); err != nil {
		logger.Get().Error().
			Err(err).
			Str("source", src).
			Str("destination", dst).
			Msg("重命名失败")
		return sourceGone, &internal.MoveFileError{Src: src, Dst: dst, Err: err}
	}

	res.add(dir, dst)
	if m.Verbose {
		m.Reporter.Moved(name, dst)
	}
	logger.Get().Debug().
		Str("source", src).
		Str("destination", dst).
		Msg("文件已移动")

	return moved, nil
}

// ensureDir 在目标目录不存在时创建（单层，不创建父目录）
func (m *Mover) ensureDir(base, keyword string) error {
	dir := filepath.Join(base, keyword)

	isDir, err := afero.DirExists(m.Fs, dir)
	if err != nil {
		return internal.IOError("stat", dir, err)
	}
	if isDir {
		return nil
	}

	if err := m.Fs.Mkdir(dir, 0755); err != nil {
		logger.Get().Error().Err(err).Str("path", dir).Msg("创建目录失败")
		return internal.IOError("mkdir", dir, err)
	}

	logger.Get().Debug().Str("path", dir).Msg("创建关键字目录")
	return nil
}

// logCollision 在 debug 级别记录冲突的两个文件内容是否相同
func (m *Mover) logCollision(src, dst string) {
	if logger.Get().GetLevel() > zerolog.DebugLevel {
		return
	}

	same, err := hasher.SameContent(m.Fs, src, dst)
	if err != nil {
		logger.Get().Debug().Err(err).Str("source", src).Msg("无法比较冲突文件")
		return
	}
	logger.Get().Debug().
		Str("source", src).
		Str("destination", dst).
		Bool("same_content", same).
		Msg("目标文件已存在，跳过")
}
