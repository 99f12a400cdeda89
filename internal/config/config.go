package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	StorageType  string        `mapstructure:"storage_type"` // "alist" 或 "baidu"
	Alist        AlistConfig   `mapstructure:"alist"`
	Baidu        BaiduConfig   `mapstructure:"baidu"`
	NameTemplate string        `mapstructure:"name_template"`
	DryRun       bool          `mapstructure:"dry_run"`
	Verbose      bool          `mapstructure:"verbose"`
	Interactive  bool          `mapstructure:"interactive"`
	History      HistoryConfig `mapstructure:"history"`
	Mail         MailConfig    `mapstructure:"mail"`
}

type AlistConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Token    string `mapstructure:"token"`
	RootPath string `mapstructure:"root_path"`
}

type BaiduConfig struct {
	AccessToken string `mapstructure:"access_token"`
	RootPath    string `mapstructure:"root_path"`
}

type HistoryConfig struct {
	Path string `mapstructure:"path"` // sqlite 历史库路径，留空则不记录
}

type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"` // 465 走 SSL，其余走 STARTTLS
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"` // SMTP 授权码，不是登录密码
	To       string `mapstructure:"to"`
}

// Load 读取工作目录下的 config.{yaml,json}。文件不存在不算错误，
// 缺失的键用默认值补齐，多余的键被忽略。
// 环境变量可覆盖，如 TVRENAME_STORAGE_TYPE=baidu。
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 默认值
	v.SetDefault("storage_type", "alist")
	v.SetDefault("alist.base_url", "http://localhost:5244")
	v.SetDefault("alist.token", "")
	v.SetDefault("alist.root_path", "/")
	v.SetDefault("baidu.access_token", "")
	v.SetDefault("baidu.root_path", "/")
	v.SetDefault("name_template", "S{season:02d}E{episode:02d}")
	v.SetDefault("dry_run", true)
	v.SetDefault("verbose", false)
	v.SetDefault("interactive", true)
	v.SetDefault("history.path", "data/tvrename.db")
	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.host", "smtp.163.com")
	v.SetDefault("mail.port", 465)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}

	v.SetEnvPrefix("TVRENAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 没有配置文件时走默认值 + 交互向导
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// NeedsSetup 判断当前存储类型是否还缺少必要凭证
func (c *Config) NeedsSetup() bool {
	if c.StorageType == "baidu" {
		return c.Baidu.AccessToken == ""
	}
	return c.Alist.Token == ""
}

// SelectedRoot 返回当前存储类型对应的根路径
func (c *Config) SelectedRoot() string {
	if c.StorageType == "baidu" {
		return c.Baidu.RootPath
	}
	return c.Alist.RootPath
}
