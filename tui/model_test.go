package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
)

var sampleRanked = []keywords.Ranked{
	{Keyword: "invoice", Count: 4},
	{Keyword: "inquiry", Count: 3},
	{Keyword: "2021", Count: 2},
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(sampleRanked)

	send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, 2, m.cursor)

	send(m, runes("j"))
	assert.Equal(t, 2, m.cursor, "cursor stays at the bottom")

	send(m, runes("k"))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_ToggleAndCommit(t *testing.T) {
	m := newModel(sampleRanked)

	// 选中第三个和第一个，结果仍按列表顺序返回
	send(m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeySpace}, runes("k"), runes("k"), tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"invoice", "2021"}, m.Selected())

	send(m, runes("j"), tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"invoice", "2021"}, m.Selected(), "toggling twice deselects")

	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.committed)
	assert.False(t, m.aborted)
}

func TestModel_Abort(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(sampleRanked)
			send(m, tea.KeyMsg{Type: tea.KeySpace})

			cmd := send(m, tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.aborted)
		})
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(sampleRanked)
	send(m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "   4")
	assert.Contains(t, view, "invoice")
	assert.Contains(t, view, "inquiry")
	assert.Contains(t, view, "quit")

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View())
}

func TestModel_Scroll(t *testing.T) {
	ranked := make([]keywords.Ranked, 20)
	for i := range ranked {
		ranked[i] = keywords.Ranked{Keyword: strings.Repeat("k", i+2), Count: 2}
	}
	m := newModel(ranked)
	send(m, tea.WindowSizeMsg{Width: 80, Height: 9})

	for range 10 {
		send(m, runes("j"))
	}
	assert.Equal(t, 10, m.cursor)
	assert.Equal(t, 6, m.offset)

	view := m.View()
	assert.NotContains(t, view, "  "+strings.Repeat("k", 2)+"\n", "first row scrolled out")
	assert.Contains(t, view, strings.Repeat("k", 12))
}

func TestModel_TruncatesLongKeywords(t *testing.T) {
	long := strings.Repeat("abcdefghij", 5)
	m := newModel([]keywords.Ranked{{Keyword: long, Count: 2}})
	send(m, tea.WindowSizeMsg{Width: 30, Height: 20})

	view := m.View()
	assert.NotContains(t, view, long)
	assert.Contains(t, view, "…")
}

func TestModel_Empty(t *testing.T) {
	m := newModel(nil)
	send(m, tea.KeyMsg{Type: tea.KeySpace}, runes("j"))
	assert.Nil(t, m.Selected())
}

func TestModel_Filter(t *testing.T) {
	m := newModel(sampleRanked)

	send(m, runes("/"))
	require.True(t, m.filtering)

	send(m, runes("inv"))
	assert.Equal(t, []int{0}, m.visible)
	assert.Contains(t, m.View(), "invoice")
	assert.NotContains(t, m.View(), "inquiry")

	// 过滤模式下 q 和空格是输入内容，不会退出或勾选
	send(m, runes("q"))
	assert.False(t, m.aborted)
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "no matching keywords")
	send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []int{0}, m.visible)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)
	assert.False(t, m.committed, "enter only applies the filter")

	send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"invoice"}, m.Selected())

	send(m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.False(t, m.aborted)
	assert.Equal(t, []int{0, 1, 2}, m.visible)
	assert.Equal(t, []string{"invoice"}, m.Selected())
}

func TestModel_FilterKeepsHiddenSelection(t *testing.T) {
	m := newModel(sampleRanked)
	send(m, runes("j"), tea.KeyMsg{Type: tea.KeySpace})

	send(m, runes("/"), runes("2021"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{2}, m.visible)
	assert.Equal(t, 0, m.cursor)

	send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"inquiry", "2021"}, m.Selected())
}

func TestModel_FilterCtrlC(t *testing.T) {
	m := newModel(sampleRanked)
	send(m, runes("/"))

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.aborted)
}

func TestPicker_Pick(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAborted bool
	}{
		{"commit without selection", "\r", false},
		{"abort", "q", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Picker{Input: strings.NewReader(tt.input), Output: &out}

			selected, aborted, err := p.Pick(sampleRanked)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAborted, aborted)
			assert.Empty(t, selected)
		})
	}
}
