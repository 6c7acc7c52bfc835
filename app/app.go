package app

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
	"github.com/craftgear/group-files-into-dirs/pkg/mover"
	"github.com/craftgear/group-files-into-dirs/pkg/pathutil"
	"github.com/craftgear/group-files-into-dirs/pkg/scanner"
	"github.com/craftgear/group-files-into-dirs/pkg/stdout"
	"github.com/craftgear/group-files-into-dirs/tui"
)

// Picker 展示排序后的关键字并返回用户选择的子集，或者放弃
type Picker interface {
	Pick(ranked []keywords.Ranked) (selected []string, aborted bool, err error)
}

type Options struct {
	Path         string
	Keywords     string
	DirAsKeyword bool
	List         bool
	Verbose      bool
	MinCount     int
	CamelCase    bool
	AltScreen    bool
	Spinner      bool
	LogLevel     string
	LogFile      string

	// 命令行给出了 --keywords，即使值为空
	KeywordsSet bool

	// 为空时写到 os.Stdout
	Stdout io.Writer
}

func (o *Options) Mode() internal.Mode {
	switch {
	case o.KeywordsSet || o.Keywords != "":
		return internal.ModeExplicit
	case o.DirAsKeyword:
		return internal.ModeDirAsKeyword
	case o.List:
		return internal.ModeList
	default:
		return internal.ModeInteractive
	}
}

// Runner 持有各个工作流共享的依赖
type Runner struct {
	Fs        afero.Fs
	Console   *stdout.Console
	Picker    Picker
	Extractor *keywords.Extractor
	MinCount  int
	Verbose   bool

	// 提取关键字时的进度指示写到这里，为空时不显示
	SpinnerOut io.Writer

	// 为空时不检查
	IsTerminal func() bool
}

func (r *Runner) scanner() *scanner.Scanner {
	return scanner.NewScanner(r.Fs)
}

func (r *Runner) mover() *mover.Mover {
	return mover.New(r.Fs, r.Verbose, r.Console)
}

// Run 按选项选择工作流，返回运行统计并输出汇总行
func Run(opts *Options) (*internal.RunStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	base, err := pathutil.Normalize(fs, opts.Path)
	if err != nil {
		return nil, err
	}

	extractor := keywords.NewExtractor()
	extractor.SplitCamelCase = opts.CamelCase

	console := stdout.New(opts.Stdout)

	r := &Runner{
		Fs:        fs,
		Console:   console,
		Picker:    tui.New(opts.AltScreen),
		Extractor: extractor,
		MinCount:  opts.MinCount,
		Verbose:   opts.Verbose,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if opts.Spinner && term.IsTerminal(int(os.Stderr.Fd())) {
		r.SpinnerOut = os.Stderr
	}

	stats := &internal.RunStats{
		Mode:      opts.Mode(),
		StartTime: time.Now(),
	}

	logger.Get().Debug().
		Str("mode", string(stats.Mode)).
		Str("path", base).
		Msg("开始处理")

	var res *mover.Result
	switch stats.Mode {
	case internal.ModeExplicit:
		res, err = r.RunExplicit(base, opts.Keywords)
	case internal.ModeDirAsKeyword:
		res, err = r.RunDirAsKeyword(base)
	case internal.ModeList:
		return stats, r.List(base)
	default:
		res, stats.Aborted, err = r.RunInteractive(base)
	}

	stats.EndTime = time.Now()
	if res != nil {
		stats.Moved = res.Moved
		stats.Dirs = len(res.Dirs)
	}
	if err != nil {
		logger.Get().Debug().Err(err).Str("mode", string(stats.Mode)).Msg("处理失败")
		return stats, err
	}

	logger.Get().Debug().
		Int("moved", len(stats.Moved)).
		Int("dirs", stats.Dirs).
		Bool("aborted", stats.Aborted).
		Dur("elapsed", stats.EndTime.Sub(stats.StartTime)).
		Msg("处理完成")

	console.Summary(len(stats.Moved), stats.Dirs)
	return stats, nil
}
