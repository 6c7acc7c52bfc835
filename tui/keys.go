package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap 关键字选择器的按键绑定
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Commit key.Binding
	Abort  key.Binding
	Filter key.Binding

	// 过滤输入模式下生效
	ClearFilter  key.Binding
	AcceptFilter key.Binding
}

// ShortHelp 实现 help.KeyMap 接口
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Filter, km.Commit, km.Abort}
}

// FullHelp 实现 help.KeyMap 接口
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Toggle, km.Filter, km.Commit},
		{km.Abort},
	}
}

// FilterHelp 过滤输入模式下显示的按键
func (km KeyMap) FilterHelp() []key.Binding {
	return []key.Binding{km.AcceptFilter, km.ClearFilter}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "move files"),
		),
		Abort: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		AcceptFilter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
	}
}
