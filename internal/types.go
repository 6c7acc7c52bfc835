package internal

import "time"

// 运行模式
type Mode string

const (
	ModeInteractive  Mode = "interactive"
	ModeExplicit     Mode = "keywords"
	ModeDirAsKeyword Mode = "dir-as-keyword"
	ModeList         Mode = "list"
)

// 运行统计
type RunStats struct {
	Mode      Mode
	Moved     []string
	Dirs      int
	Aborted   bool
	StartTime time.Time
	EndTime   time.Time
}
