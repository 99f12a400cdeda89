package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/xiaozhuazi/tvrename/internal/config"
	"github.com/xiaozhuazi/tvrename/internal/display"
)

// interactiveSetup 在缺少凭证时向用户逐项询问，结果直接写回 cfg
func interactiveSetup(cfg *config.Config) error {
	display.Section("配置向导")

	var storageType string
	prompt := &survey.Select{
		Message: "选择存储类型:",
		Options: []string{"Alist / OpenList", "百度网盘"},
	}
	if err := survey.AskOne(prompt, &storageType); err != nil {
		return err
	}

	if storageType == "百度网盘" {
		cfg.StorageType = "baidu"

		var accessToken string
		if err := survey.AskOne(&survey.Input{Message: "Access Token:"}, &accessToken); err != nil {
			return err
		}
		if accessToken == "" {
			return fmt.Errorf("access token 不能为空")
		}
		cfg.Baidu.AccessToken = accessToken
		if cfg.Baidu.RootPath == "" {
			cfg.Baidu.RootPath = "/"
		}
	} else {
		cfg.StorageType = "alist"

		var baseURL string
		if err := survey.AskOne(&survey.Input{
			Message: "服务地址:",
			Default: "http://localhost:5244",
		}, &baseURL); err != nil {
			return err
		}

		var token string
		if err := survey.AskOne(&survey.Input{Message: "Token:"}, &token); err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("token 不能为空")
		}
		cfg.Alist.BaseURL = baseURL
		cfg.Alist.Token = token
		if cfg.Alist.RootPath == "" {
			cfg.Alist.RootPath = "/"
		}
	}

	var template string
	if err := survey.AskOne(&survey.Input{
		Message: "命名模板:",
		Default: cfg.NameTemplate,
		Help:    "S{season:02d}E{episode:02d} → S01E01.mp4",
	}, &template); err != nil {
		return err
	}
	if template != "" {
		cfg.NameTemplate = template
	}

	return nil
}
