package app

import (
	"github.com/schollz/progressbar/v3"

	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
	"github.com/craftgear/group-files-into-dirs/pkg/mover"
)

// RunInteractive 从文件名中挖掘关键字，交给 Picker 选择后移动文件。
// 用户放弃时 aborted 为 true，不移动任何文件。
func (r *Runner) RunInteractive(base string) (res *mover.Result, aborted bool, err error) {
	if r.IsTerminal != nil && !r.IsTerminal() {
		return nil, false, internal.ErrNotTerminal
	}

	files, ranked, err := r.candidates(base)
	if err != nil {
		return nil, false, err
	}

	selected, aborted, err := r.Picker.Pick(ranked)
	if err != nil {
		return nil, false, err
	}
	if aborted {
		return &mover.Result{}, true, nil
	}
	if len(selected) == 0 {
		logger.Get().Debug().Msg("没有选择关键字")
		return &mover.Result{}, false, nil
	}

	res, err = r.mover().Move(base, files, selected)
	return res, false, err
}

// List 输出候选关键字表格，不移动文件
func (r *Runner) List(base string) error {
	_, ranked, err := r.candidates(base)
	if err != nil {
		return err
	}
	return r.Console.KeywordTable(ranked)
}

// candidates 返回目录中的文件以及出现次数达到 MinCount 的排序关键字
func (r *Runner) candidates(base string) ([]string, []keywords.Ranked, error) {
	files, err := r.scanner().Files(base)
	if err != nil {
		return nil, nil, err
	}

	step, done := r.spinner()
	histogram := r.Extractor.Aggregate(files, step)
	done()

	ranked := keywords.AtLeast(keywords.Rank(histogram), r.minCount())

	logger.Get().Debug().
		Int("files", len(files)).
		Int("keywords", len(histogram)).
		Int("candidates", len(ranked)).
		Msg("关键字提取完成")

	if len(ranked) == 0 {
		return nil, nil, internal.ErrNoKeywordsFound
	}
	return files, ranked, nil
}

func (r *Runner) minCount() int {
	if r.MinCount < 1 {
		return internal.DefaultMinCount
	}
	return r.MinCount
}

func (r *Runner) spinner() (step func(), done func()) {
	if r.SpinnerOut == nil {
		return nil, func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.SpinnerOut),
		progressbar.OptionSetDescription("extracting keywords with 2 or more characters from filenames"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func() { _ = bar.Add(1) }, func() { _ = bar.Finish() }
}
