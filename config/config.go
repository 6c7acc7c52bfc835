package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/craftgear/group-files-into-dirs/internal"
)

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Keywords struct {
		MinCount  int  `mapstructure:"min_count"`
		CamelCase bool `mapstructure:"camel_case"`
	}
	Picker struct {
		AltScreen bool `mapstructure:"alt_screen"`
	}
	Output struct {
		Spinner bool
	}
}

// 命令行参数到配置键的映射
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-file":   "logging.file",
	"min-count":  "keywords.min_count",
	"camel-case": "keywords.camel_case",
}

var cfg Config

// Load 读取配置，优先级：命令行参数 > 环境变量 > 配置文件 > 默认值
// configFile 为空时在默认路径中查找 config.yaml，找不到不算错误
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/.group-files-into-dirs")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/group-files-into-dirs")
	}

	v.SetEnvPrefix("GROUP_FILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", internal.DefaultLogLevel)
	v.SetDefault("logging.file", "")
	v.SetDefault("keywords.min_count", internal.DefaultMinCount)
	v.SetDefault("keywords.camel_case", false)
	v.SetDefault("picker.alt_screen", true)
	v.SetDefault("output.spinner", true)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, err
	}
	if loaded.Keywords.MinCount < 1 {
		loaded.Keywords.MinCount = 1
	}

	cfg = loaded
	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
