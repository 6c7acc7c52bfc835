package internal

import (
	"errors"
	"fmt"
)

// 错误分类
var (
	// ErrNoKeywordsFound 没有可用的关键字（候选列表为空、显式列表为空或没有子目录）
	ErrNoKeywordsFound = errors.New("no keywords found")

	// ErrKeywordLength 用户提供的关键字少于 MinKeywordLength 个字符
	ErrKeywordLength = errors.New("keyword length error")

	// ErrIO 目录读取/创建失败、路径不存在等
	ErrIO = errors.New("io error")

	// ErrNotTerminal 交互模式需要终端
	ErrNotTerminal = fmt.Errorf("%w: interactive mode requires a terminal, use --keywords or --dir-as-keyword", ErrIO)
)

// MoveFileError 重命名失败，对整个运行是致命的
type MoveFileError struct {
	Src string
	Dst string
	Err error
}

func (e *MoveFileError) Error() string {
	return fmt.Sprintf("move file error: %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *MoveFileError) Unwrap() error {
	return e.Err
}

// IOError 把底层错误归类为 ErrIO
func IOError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
