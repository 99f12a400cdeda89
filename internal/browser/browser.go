package browser

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/xiaozhuazi/tvrename/internal/display"
	"github.com/xiaozhuazi/tvrename/internal/model"
	"github.com/xiaozhuazi/tvrename/internal/parser"
	"github.com/xiaozhuazi/tvrename/internal/storage"
)

// ErrCancelled 用户在浏览过程中取消了选择
var ErrCancelled = fmt.Errorf("用户取消选择")

const (
	optionHere = "✔ 选择当前目录"
	optionUp   = "📁 .. (返回上级)"
	optionQuit = "✖ 退出"
)

// Browser 交互式远端目录浏览器
type Browser struct {
	backend storage.Backend
	current string
}

func New(b storage.Backend) *Browser {
	return &Browser{backend: b, current: b.RootPath()}
}

// SelectDirectory 逐级浏览远端目录，返回用户确认的路径。
// 用户退出返回 ErrCancelled，Ctrl-C 原样返回 terminal.InterruptErr。
func (br *Browser) SelectDirectory(ctx context.Context) (string, error) {
	display.Section("浏览文件夹")

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		entries, err := br.backend.ListEntries(ctx, br.current)
		if err != nil {
			return "", fmt.Errorf("无法访问目录 %s: %w", br.current, err)
		}

		dirs, files := splitEntries(entries)
		br.printSummary(files)

		options := make([]string, 0, len(dirs)+3)
		options = append(options, optionHere)
		if br.current != "/" {
			options = append(options, optionUp)
		}
		for _, d := range dirs {
			options = append(options, "📁 "+d.Name+"/")
		}
		options = append(options, optionQuit)

		var choice string
		prompt := &survey.Select{
			Message:  fmt.Sprintf("当前路径: %s", br.current),
			Options:  options,
			PageSize: 15,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if err == terminal.InterruptErr {
				return "", err
			}
			return "", ErrCancelled
		}

		switch choice {
		case optionHere:
			confirmed := false
			c := &survey.Confirm{Message: fmt.Sprintf("确认选择 %s ?", br.current)}
			if err := survey.AskOne(c, &confirmed); err != nil {
				if err == terminal.InterruptErr {
					return "", err
				}
				return "", ErrCancelled
			}
			if confirmed {
				return br.current, nil
			}
		case optionUp:
			br.current = storage.ParentDir(br.current)
		case optionQuit:
			return "", ErrCancelled
		default:
			name := strings.TrimSuffix(strings.TrimPrefix(choice, "📁 "), "/")
			br.current = storage.JoinPath(br.current, name)
		}
	}
}

// splitEntries 文件夹在前、文件在后，各自按名称排序
func splitEntries(entries []model.RemoteEntry) (dirs, files []model.RemoteEntry) {
	for _, e := range entries {
		if e.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
	return dirs, files
}

func (br *Browser) printSummary(files []model.RemoteEntry) {
	if len(files) == 0 {
		return
	}
	videos := 0
	for _, f := range files {
		if parser.IsVideoFile(f.Name) {
			videos++
		}
	}
	display.Info("文件 %d 个，其中视频 %d 个", len(files), videos)
}

// ConfirmApply 在预览之后询问是否真正执行重命名
func ConfirmApply() (bool, error) {
	confirmed := false
	c := &survey.Confirm{Message: "是否执行重命名?"}
	if err := survey.AskOne(c, &confirmed); err != nil {
		if err == terminal.InterruptErr {
			return false, err
		}
		return false, nil
	}
	return confirmed, nil
}
