package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	blue   = color.New(color.FgBlue)
	faint  = color.New(color.Faint)
	bright = color.New(color.Bold)
)

func Banner() {
	cyan.Println("╔══════════════════════════════════════════════════════════╗")
	cyan.Println("║ 🐾 电视剧批量重命名工具                                  ║")
	cyan.Println("║                                            小爪子出品    ║")
	cyan.Println("╚══════════════════════════════════════════════════════════╝")
}

func Section(title string) {
	line := strings.Repeat("─", 60)
	blue.Println("\n" + line)
	blue.Println(" " + title)
	blue.Println(line)
}

func Success(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", green.Sprint("✓"), fmt.Sprintf(format, a...))
}

func Error(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", red.Sprint("✗"), fmt.Sprintf(format, a...))
}

func Warning(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", yellow.Sprint("⚠"), fmt.Sprintf(format, a...))
}

func Info(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", cyan.Sprint("ℹ"), fmt.Sprintf(format, a...))
}

// FormatSize 把字节数格式化为人类可读的大小
func FormatSize(size int64) string {
	f := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if f < 1024 {
			return fmt.Sprintf("%.1f %s", f, unit)
		}
		f /= 1024
	}
	return fmt.Sprintf("%.1f TB", f)
}

// previewLimit 预览表格最多展示的行数
const previewLimit = 20

// PreviewTable 打印重命名预览表，超出部分折叠为一行提示
func PreviewTable(changes []model.RenameChange) {
	if len(changes) == 0 {
		return
	}

	bright.Println("\n重命名预览:")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"原始文件名", "新文件名"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 50},
		{Number: 2, Align: text.AlignLeft, WidthMax: 30},
	})

	for i, c := range changes {
		if i >= previewLimit {
			break
		}
		tw.AppendRow(table.Row{c.OldName, green.Sprint(c.NewName)})
	}
	fmt.Println(tw.Render())

	if len(changes) > previewLimit {
		faint.Printf("  ... 还有 %d 个文件\n", len(changes)-previewLimit)
	}
}

// PlanStats 打印一次扫描的分类统计
func PlanStats(episodes, changes, nonVideo, alreadyCorrect, unparseable, templateErrs int) {
	bright.Println("\n统计信息:")
	green.Printf("  可识别剧集: %d\n", episodes)
	yellow.Printf("  需要重命名: %d\n", changes)
	cyan.Printf("  已符合模板: %d\n", alreadyCorrect)
	faint.Printf("  非视频跳过: %d\n", nonVideo)
	if unparseable > 0 {
		red.Printf("  无法识别:   %d\n", unparseable)
	}
	if templateErrs > 0 {
		red.Printf("  模板错误:   %d\n", templateErrs)
	}
}

// ResultSummary 打印执行结果汇总及失败详情
func ResultSummary(results []model.RenameResult) {
	success := 0
	var failed []model.RenameResult
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	bright.Println("\n重命名结果:")
	green.Printf("  成功: %d\n", success)
	if len(failed) > 0 {
		red.Printf("  失败: %d\n", len(failed))
		red.Println("\n失败详情:")
		for _, r := range failed {
			fmt.Printf("  %s: %s\n", r.OldName, r.Error)
		}
	}
}
