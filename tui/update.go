package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// 标题、空行和帮助行占用的行数
const chromeLines = 4

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.help.Width = msg.Width
		m.scroll()
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Commit):
		m.committed = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		if len(m.visible) > 0 {
			i := m.visible[m.cursor]
			m.items[i].selected = !m.items[i].selected
		}
	}

	return m, nil
}

// handleFilterKey 过滤输入模式：字符键写入过滤条件，方向键仍可移动
func (m *model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ClearFilter):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.AcceptFilter):
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case msg.Type == tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case msg.Type == tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.visible)-1 {
		m.cursor = max(len(m.visible)-1, 0)
	}
	m.scroll()
}

// scroll 保证光标所在行在可见窗口内
func (m *model) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *model) visibleRows() int {
	if m.height == 0 {
		return max(len(m.visible), 1)
	}
	rows := m.height - chromeLines
	if m.showFilter() {
		rows--
	}
	return max(rows, 1)
}
