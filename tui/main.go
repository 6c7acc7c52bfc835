package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
	"github.com/craftgear/group-files-into-dirs/pkg/logger"
)

// Picker 在终端中列出排序后的关键字供用户勾选
type Picker struct {
	AltScreen bool

	// 为空时使用终端的 stdin/stdout
	Input  io.Reader
	Output io.Writer
}

func New(altScreen bool) *Picker {
	return &Picker{AltScreen: altScreen}
}

// Pick 返回选中的关键字（按列表顺序），用户放弃时 aborted 为 true。
// 无论以何种方式退出，终端都会被恢复。
func (p *Picker) Pick(ranked []keywords.Ranked) (selected []string, aborted bool, err error) {
	logger.Get().Debug().Int("keywords", len(ranked)).Msg("启动关键字选择界面")

	var opts []tea.ProgramOption
	if p.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}

	final, err := tea.NewProgram(newModel(ranked), opts...).Run()
	if errors.Is(err, tea.ErrInterrupted) {
		logger.Get().Debug().Msg("收到中断信号，取消选择")
		return nil, true, nil
	}
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
		return nil, false, fmt.Errorf("关键字选择界面运行失败: %w", err)
	}

	m, ok := final.(*model)
	if !ok || m.aborted {
		logger.Get().Debug().Msg("用户取消选择")
		return nil, true, nil
	}

	selected = m.Selected()
	logger.Get().Debug().Strs("selected", selected).Msg("关键字选择完成")
	return selected, false, nil
}
