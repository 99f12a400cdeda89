package renamer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTemplate 是默认命名模板，渲染为 S01E02 形式
const DefaultTemplate = "S{season:02d}E{episode:02d}"

// 占位符形如 {season} / {episode:02d}，宽度用 0 补齐
var placeholderRe = regexp.MustCompile(`\{(season|episode)(?::(0?)(\d+)d)?\}`)

// 渲染后残留的 {...} 说明模板里有无法识别的占位符
var leftoverRe = regexp.MustCompile(`\{[^{}]*\}`)

// RenderTemplate 按模板渲染文件名主体 (不含扩展名)。
// 支持 {season} 和 {episode} 两个占位符，可选 :0Nd 宽度说明。
// 模板含未知占位符或非法说明符时返回错误。
func RenderTemplate(template string, season, episode int) (string, error) {
	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholderRe.FindStringSubmatch(m)
		val := season
		if sub[1] == "episode" {
			val = episode
		}
		if sub[3] == "" {
			return strconv.Itoa(val)
		}
		width, _ := strconv.Atoi(sub[3])
		if sub[2] == "0" {
			return fmt.Sprintf("%0*d", width, val)
		}
		return fmt.Sprintf("%*d", width, val)
	})

	if m := leftoverRe.FindString(out); m != "" {
		return "", fmt.Errorf("模板格式化失败: 无法识别的占位符 %s", m)
	}
	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("模板格式化失败: 花括号不配对 %q", template)
	}
	return out, nil
}
