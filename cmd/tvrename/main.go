package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	log "github.com/sirupsen/logrus"

	"github.com/xiaozhuazi/tvrename/internal/browser"
	"github.com/xiaozhuazi/tvrename/internal/config"
	"github.com/xiaozhuazi/tvrename/internal/display"
	"github.com/xiaozhuazi/tvrename/internal/history"
	"github.com/xiaozhuazi/tvrename/internal/model"
	"github.com/xiaozhuazi/tvrename/internal/notify"
	"github.com/xiaozhuazi/tvrename/internal/renamer"
	"github.com/xiaozhuazi/tvrename/internal/storage"
)

const (
	exitOK        = 0
	exitFatal     = 1
	exitInterrupt = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	display.Banner()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})

	cfg, err := config.Load("")
	if err != nil {
		display.Error("配置加载失败: %v", err)
		return exitFatal
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// 缺少凭证时走交互向导
	if cfg.NeedsSetup() {
		if !cfg.Interactive {
			display.Error("缺少必要配置 (token / access_token)")
			return exitFatal
		}
		display.Warning("缺少必要配置，启动配置向导...")
		if err := interactiveSetup(cfg); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return interrupted()
			}
			display.Error("配置失败: %v", err)
			return exitFatal
		}
	}

	backend, err := buildBackend(cfg)
	if err != nil {
		display.Error("初始化存储失败: %v", err)
		return exitFatal
	}

	display.Info("测试连接...")
	if err := storage.TestConnection(ctx, backend); err != nil {
		if ctx.Err() != nil {
			return interrupted()
		}
		display.Error("无法连接到存储服务: %v", err)
		return exitFatal
	}
	display.Success("连接正常")

	// 选目录：交互式浏览或直接取配置里的根路径
	selectedPath := cfg.SelectedRoot()
	if cfg.Interactive {
		br := browser.New(backend)
		selectedPath, err = br.SelectDirectory(ctx)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) || ctx.Err() != nil {
				return interrupted()
			}
			if errors.Is(err, browser.ErrCancelled) {
				display.Info("已取消")
				return exitOK
			}
			display.Error("%v", err)
			return exitFatal
		}
	}

	display.Info("命名模板: %s", cfg.NameTemplate)

	display.Section(fmt.Sprintf("扫描目录: %s", selectedPath))
	start := time.Now()
	entries, err := backend.ListEntries(ctx, selectedPath)
	if err != nil {
		if ctx.Err() != nil {
			return interrupted()
		}
		display.Error("无法列出目录: %v", err)
		return exitFatal
	}
	if len(entries) == 0 {
		display.Warning("未找到文件或无法访问目录")
		return exitOK
	}

	plan := renamer.BuildPlan(selectedPath, entries, cfg.NameTemplate)
	display.PlanStats(len(plan.Episodes), len(plan.Changes), len(plan.SkippedNonVideo),
		len(plan.AlreadyCorrect), len(plan.Unparseable), len(plan.TemplateErrors))
	display.PreviewTable(plan.Changes)
	if cfg.Verbose && len(plan.Unparseable) > 0 {
		display.Warning("无法识别的文件:")
		for _, name := range plan.Unparseable {
			fmt.Printf("  - %s\n", name)
		}
	}
	log.Debugf("扫描耗时: %.2f秒", time.Since(start).Seconds())

	if len(plan.Changes) == 0 {
		display.Info("无需重命名")
		return exitOK
	}

	// 预览模式需要用户确认后才真正执行
	if cfg.DryRun {
		display.Warning("当前为预览模式，未实际重命名")
		ok, err := browser.ConfirmApply()
		if err != nil {
			return interrupted()
		}
		if !ok {
			display.Info("已取消")
			return exitOK
		}
	}

	display.Section("执行重命名")
	exec := &renamer.Executor{
		Backend: backend,
		Progress: func(i, total int, res model.RenameResult) {
			if res.Success {
				fmt.Printf("[%d/%d] %s %s\n", i, total, res.OldName, "✓")
			} else {
				fmt.Printf("[%d/%d] %s ✗ %s\n", i, total, res.OldName, res.Error)
			}
		},
	}
	results := exec.Apply(ctx, selectedPath, plan.Changes)
	if ctx.Err() != nil && len(results) < len(plan.Changes) {
		display.Warning("已中断，完成 %d/%d", len(results), len(plan.Changes))
		recordAndNotify(cfg, backend.Name(), selectedPath, results)
		return exitInterrupt
	}

	display.ResultSummary(results)
	recordAndNotify(cfg, backend.Name(), selectedPath, results)

	display.Success("✨ 完成！")
	return exitOK
}

func buildBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageType {
	case "alist", "":
		return storage.NewAlist(cfg.Alist.BaseURL, cfg.Alist.Token, cfg.Alist.RootPath)
	case "baidu":
		return storage.NewBaidu(cfg.Baidu.AccessToken, cfg.Baidu.RootPath)
	default:
		return nil, fmt.Errorf("不支持的存储类型: %s", cfg.StorageType)
	}
}

// recordAndNotify 写入历史库并按需发送邮件报告，二者失败都不影响退出码
func recordAndNotify(cfg *config.Config, storageName, dir string, results []model.RenameResult) {
	if len(results) == 0 {
		return
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			log.Warnf("历史库打开失败: %v", err)
		} else if err := store.Record(storageName, dir, results); err != nil {
			log.Warnf("历史记录失败: %v", err)
		}
	}

	if cfg.Mail.Enabled {
		body := notify.BuildReport(storageName, dir, results)
		subject := fmt.Sprintf("重命名报告: %s (%d/%d 成功)", dir, renamer.SuccessCount(results), len(results))
		if err := notify.SendReport(cfg.Mail, subject, body); err != nil {
			display.Warning("%v", err)
		} else {
			display.Success("报告邮件已发送至 %s", cfg.Mail.To)
		}
	}
}

func interrupted() int {
	fmt.Println()
	display.Warning("用户中断")
	return exitInterrupt
}
