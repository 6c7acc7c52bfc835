// Package stdout 输出运行结果行。诊断信息不写这里，
// 通过 pkg/logger 写到 stderr。
package stdout

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	movedColor   = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow, color.Bold)
	summaryColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)
)

// Console 实现 mover.Reporter，并输出最终的汇总行
type Console struct {
	w io.Writer
}

func New(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func (c *Console) Moved(name, dst string) {
	movedColor.Fprintf(c.w, "moved: %s → %s\n", name, dst)
}

func (c *Console) AlreadyMoved(name string) {
	warnColor.Fprintf(c.w, "already moved: %s\n", name)
}

func (c *Console) AlreadyExists(name string) {
	warnColor.Fprintf(c.w, "already exists: %s\n", name)
}

// Summary 输出 n 个文件移动到 m 个目录的汇总
func (c *Console) Summary(files, dirs int) {
	if files == 0 {
		movedColor.Fprintln(c.w, "no files are moved.")
		return
	}
	summaryColor.Fprintf(c.w, "moved %d files to %d directories.\n", files, dirs)
}

func (c *Console) Error(err error) {
	msg := strings.TrimSuffix(err.Error(), ".")
	errorColor.Fprintf(c.w, "Error: %s.\n", msg)
}
