package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftgear/group-files-into-dirs/app"
	"github.com/craftgear/group-files-into-dirs/config"
	"github.com/craftgear/group-files-into-dirs/internal"
	"github.com/craftgear/group-files-into-dirs/pkg/stdout"
)

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group-files-into-dirs <path>",
		Short: "按文件名中的关键字把文件归入子目录",
		Long: `group-files-into-dirs 把目录中文件名包含关键字的文件移动到以关键字命名的子目录中。

关键字的来源:
- --keywords 直接指定（逗号分隔）
- --dir-as-keyword 使用已有子目录的名字
- 默认从文件名中提取候选关键字，在终端界面中选择`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(cmd, args, out)
		},
	}

	flags := cmd.Flags()
	flags.StringP("keywords", "k", "", "逗号分隔的关键字，每个至少 2 个字符")
	flags.BoolP("verbose", "v", false, "输出每个被移动的文件")
	flags.BoolP("dir-as-keyword", "d", false, "使用已有子目录的名字作为关键字")
	flags.BoolP("list", "l", false, "只列出候选关键字，不移动文件")
	flags.Int("min-count", internal.DefaultMinCount, "候选关键字的最小出现次数")
	flags.Bool("camel-case", false, "按驼峰边界继续拆分关键字")
	flags.String("config", "", "配置文件路径")
	flags.String("log-level", internal.DefaultLogLevel, "日志级别 (trace, debug, info, warn, error)")
	flags.String("log-file", "", "日志文件路径")

	cmd.MarkFlagsMutuallyExclusive("keywords", "dir-as-keyword", "list")

	return cmd
}

func runGroup(cmd *cobra.Command, args []string, out io.Writer) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	keywords, _ := cmd.Flags().GetString("keywords")
	dirAsKeyword, _ := cmd.Flags().GetBool("dir-as-keyword")
	list, _ := cmd.Flags().GetBool("list")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.Options{
		Path:         args[0],
		Keywords:     keywords,
		KeywordsSet:  cmd.Flags().Changed("keywords"),
		DirAsKeyword: dirAsKeyword,
		List:         list,
		Verbose:      verbose,
		MinCount:     cfg.Keywords.MinCount,
		CamelCase:    cfg.Keywords.CamelCase,
		AltScreen:    cfg.Picker.AltScreen,
		Spinner:      cfg.Output.Spinner,
		LogLevel:     cfg.Logging.Level,
		LogFile:      cfg.Logging.File,
		Stdout:       out,
	}

	_, err = app.Run(opts)
	return err
}

func execute(args []string, out io.Writer) int {
	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	cmd.SetOut(out)

	if err := cmd.Execute(); err != nil {
		stdout.New(out).Error(err)
		return 1
	}
	return 0
}

// Execute 解析命令行并运行，失败时以状态码 1 退出
func Execute() {
	if code := execute(os.Args[1:], os.Stdout); code != 0 {
		os.Exit(code)
	}
}
