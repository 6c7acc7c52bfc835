package stdout

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/craftgear/group-files-into-dirs/pkg/keywords"
)

// KeywordTable 按排序结果输出关键字表格（--list）
func (c *Console) KeywordTable(ranked []keywords.Ranked) error {
	table := tablewriter.NewWriter(c.w)
	table.Header([]string{"Rank", "Count", "Keyword"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignRight, tw.AlignLeft}
	})

	data := make([][]string, 0, len(ranked))
	for i, r := range ranked {
		data = append(data, []string{strconv.Itoa(i + 1), strconv.Itoa(r.Count), r.Keyword})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
