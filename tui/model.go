package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
)

type item struct {
	keywords.Ranked
	selected bool
}

type model struct {
	items []item

	// visible 是过滤后可见行在 items 中的下标，cursor 和 offset 都以它为准
	visible []int
	cursor  int
	offset  int
	height  int
	width   int

	filter    textinput.Model
	filtering bool

	keys      KeyMap
	help      help.Model
	committed bool
	aborted   bool
}

func newModel(ranked []keywords.Ranked) *model {
	items := make([]item, len(ranked))
	for i, r := range ranked {
		items[i] = item{Ranked: r}
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.PromptStyle = filterPromptStyle
	filter.Placeholder = "keyword"

	m := &model{
		items:  items,
		filter: filter,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Selected 按列表顺序（即排序顺序）返回选中的关键字，包括被过滤隐藏的行
func (m *model) Selected() []string {
	var selected []string
	for _, it := range m.items {
		if it.selected {
			selected = append(selected, it.Keyword)
		}
	}
	return selected
}

// applyFilter 用模糊匹配（忽略大小写）重新计算可见行，保持排序顺序
func (m *model) applyFilter() {
	query := m.filter.Value()

	m.visible = m.visible[:0]
	for i, it := range m.items {
		if query == "" || fuzzy.MatchFold(query, it.Keyword) {
			m.visible = append(m.visible, i)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
	m.offset = 0
	m.scroll()
}

func (m *model) showFilter() bool {
	return m.filtering || m.filter.Value() != ""
}
