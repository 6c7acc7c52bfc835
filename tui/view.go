package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// 光标、复选框和计数列的宽度
const rowPrefixWidth = 12

func (m *model) View() string {
	// 退出后清空画面，结果由调用方输出
	if m.committed || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Select keywords to group files by") + "\n")

	if m.showFilter() {
		b.WriteString(m.filter.View() + "\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(hintStyle.Render("  no matching keywords") + "\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.visible))
	for row := m.offset; row < end; row++ {
		b.WriteString(m.renderRow(row) + "\n")
	}

	b.WriteString("\n" + hintStyle.Render(m.helpView()))

	return b.String()
}

func (m *model) helpView() string {
	if m.filtering {
		return m.help.ShortHelpView(m.keys.FilterHelp())
	}
	return m.help.View(m.keys)
}

func (m *model) renderRow(row int) string {
	it := m.items[m.visible[row]]

	cursor := "  "
	if row == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	box := "[ ]"
	keyword := it.Keyword
	if m.width > rowPrefixWidth {
		keyword = truncate.StringWithTail(keyword, uint(m.width-rowPrefixWidth), "…")
	}
	if it.selected {
		box = selectedStyle.Render("[x]")
		keyword = selectedStyle.Render(keyword)
	}

	return fmt.Sprintf("%s%s %s  %s", cursor, box, countStyle.Render(fmt.Sprintf("%4d", it.Count)), keyword)
}
