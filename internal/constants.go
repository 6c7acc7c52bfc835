package internal

const (
	// 用户提供关键字的最小长度（字符数）
	MinKeywordLength = 2

	// 交互模式下候选关键字的最小出现次数
	DefaultMinCount = 2

	// 默认日志级别
	DefaultLogLevel = "warn"
)
