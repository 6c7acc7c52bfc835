package keywords

// Histogram 记录每个关键字出现的次数
type Histogram map[string]int

// Add 每出现一次计数加一
func (h Histogram) Add(keywords ...string) {
	for _, k := range keywords {
		h[k]++
	}
}

// Aggregate 对每个文件名提取关键字并汇总成直方图。
// progress 不为空时每处理一个文件名调用一次
func (e *Extractor) Aggregate(filenames []string, progress func()) Histogram {
	h := make(Histogram)
	for _, name := range filenames {
		h.Add(e.Extract(name)...)
		if progress != nil {
			progress()
		}
	}
	return h
}
