package renamer

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xiaozhuazi/tvrename/internal/model"
	"github.com/xiaozhuazi/tvrename/internal/parser"
	"github.com/xiaozhuazi/tvrename/internal/storage"
)

// Plan 是一次目录扫描的完整结果。
// 非视频、已符合模板、无法识别、模板渲染失败分别计数，互不混淆。
type Plan struct {
	Episodes []model.EpisodeInfo  // 识别出的剧集
	Changes  []model.RenameChange // 需要执行的重命名

	SkippedNonVideo []string // 扩展名不在视频集合内
	AlreadyCorrect  []string // 渲染结果与原名一致，无需改动
	Unparseable     []string // 没有规则能识别
	TemplateErrors  []string // 该文件的模板渲染失败信息
}

// BuildPlan 根据目录列表和命名模板生成重命名计划。
// 纯函数：相同输入总是产生相同的计划；对已完整应用过的计划再跑一次，
// Changes 为空。目录条目被直接丢弃。
func BuildPlan(dir string, entries []model.RemoteEntry, template string) Plan {
	var plan Plan

	for _, entry := range entries {
		if entry.IsDir {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name))
		if !parser.VideoExts[ext] {
			plan.SkippedNonVideo = append(plan.SkippedNonVideo, entry.Name)
			continue
		}

		info := parser.MatchEpisode(entry.Name)
		if info == nil {
			plan.Unparseable = append(plan.Unparseable, entry.Name)
			continue
		}
		info.FilePath = storage.JoinPath(dir, entry.Name)
		info.FileSize = entry.Size
		plan.Episodes = append(plan.Episodes, *info)

		base, err := RenderTemplate(template, info.Season, info.Episode)
		if err != nil {
			// 模板问题只影响单个文件，不中断整批
			log.Errorf("%s: %v", entry.Name, err)
			plan.TemplateErrors = append(plan.TemplateErrors, entry.Name+": "+err.Error())
			continue
		}
		newName := base + ext

		if newName == entry.Name {
			plan.AlreadyCorrect = append(plan.AlreadyCorrect, entry.Name)
			continue
		}
		plan.Changes = append(plan.Changes, model.RenameChange{
			OldName: entry.Name,
			NewName: newName,
		})
	}

	return plan
}
