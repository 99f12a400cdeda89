package renamer

import (
	"testing"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

func file(name string) model.RemoteEntry {
	return model.RemoteEntry{Name: name, Path: "/tv/" + name}
}

func TestBuildPlan_Classification(t *testing.T) {
	entries := []model.RemoteEntry{
		file("Show.Name.S01E02.1080p.mkv"), // 需要重命名
		file("第3集.mp4"),                    // 需要重命名，季默认 1
		file("random_notes.txt"),           // 非视频
		file("movie_2020.mp4"),             // 无法识别
		file("S01E05.mkv"),                 // 已符合模板
		{Name: "Season 2", IsDir: true},    // 目录被忽略
	}

	plan := BuildPlan("/tv", entries, "S{season:02d}E{episode:02d}")

	if len(plan.Changes) != 2 {
		t.Fatalf("len(Changes) = %d, want 2", len(plan.Changes))
	}
	if plan.Changes[0].NewName != "S01E02.mkv" {
		t.Errorf("Changes[0].NewName = %q, want S01E02.mkv", plan.Changes[0].NewName)
	}
	if plan.Changes[1].NewName != "S01E03.mp4" {
		t.Errorf("Changes[1].NewName = %q, want S01E03.mp4", plan.Changes[1].NewName)
	}

	// 非视频 / 已符合 / 无法识别是三类独立的结果
	if len(plan.SkippedNonVideo) != 1 || plan.SkippedNonVideo[0] != "random_notes.txt" {
		t.Errorf("SkippedNonVideo = %v", plan.SkippedNonVideo)
	}
	if len(plan.AlreadyCorrect) != 1 || plan.AlreadyCorrect[0] != "S01E05.mkv" {
		t.Errorf("AlreadyCorrect = %v", plan.AlreadyCorrect)
	}
	if len(plan.Unparseable) != 1 || plan.Unparseable[0] != "movie_2020.mp4" {
		t.Errorf("Unparseable = %v", plan.Unparseable)
	}
	if len(plan.Episodes) != 3 {
		t.Errorf("len(Episodes) = %d, want 3", len(plan.Episodes))
	}
	if plan.Episodes[0].FilePath != "/tv/Show.Name.S01E02.1080p.mkv" {
		t.Errorf("Episodes[0].FilePath = %q", plan.Episodes[0].FilePath)
	}
}

// 对已经完整应用过的计划再扫一遍，不应产生任何改动
func TestBuildPlan_Idempotent(t *testing.T) {
	entries := []model.RemoteEntry{
		file("Show.S01E02.mkv"),
		file("第3集.mp4"),
	}
	tpl := "S{season:02d}E{episode:02d}"

	plan := BuildPlan("/tv", entries, tpl)
	if len(plan.Changes) != 2 {
		t.Fatalf("first pass: len(Changes) = %d, want 2", len(plan.Changes))
	}

	// 模拟计划被全部应用
	renamed := make([]model.RemoteEntry, len(plan.Changes))
	for i, c := range plan.Changes {
		renamed[i] = file(c.NewName)
	}

	second := BuildPlan("/tv", renamed, tpl)
	if len(second.Changes) != 0 {
		t.Errorf("second pass: len(Changes) = %d, want 0: %v", len(second.Changes), second.Changes)
	}
	if len(second.AlreadyCorrect) != len(renamed) {
		t.Errorf("second pass: AlreadyCorrect = %v", second.AlreadyCorrect)
	}
}

// 扩展名统一转小写后拼接
func TestBuildPlan_ExtensionLowercased(t *testing.T) {
	plan := BuildPlan("/tv", []model.RemoteEntry{file("Show.S01E02.MKV")}, "S{season:02d}E{episode:02d}")
	if len(plan.Changes) != 1 {
		t.Fatalf("len(Changes) = %d, want 1", len(plan.Changes))
	}
	if plan.Changes[0].NewName != "S01E02.mkv" {
		t.Errorf("NewName = %q, want S01E02.mkv", plan.Changes[0].NewName)
	}
}

// 文件名怎么写都不重要：非视频扩展名永远不会进入 Changes
func TestBuildPlan_NonVideoNeverRenamed(t *testing.T) {
	entries := []model.RemoteEntry{
		file("Show.S01E02.txt"),
		file("第3集.nfo"),
		file("S01E01.srt"),
	}
	plan := BuildPlan("/tv", entries, "S{season:02d}E{episode:02d}")
	if len(plan.Changes) != 0 {
		t.Errorf("len(Changes) = %d, want 0: %v", len(plan.Changes), plan.Changes)
	}
	if len(plan.SkippedNonVideo) != 3 {
		t.Errorf("len(SkippedNonVideo) = %d, want 3", len(plan.SkippedNonVideo))
	}
}

// 模板损坏只影响单个文件的归类，不会 panic 也不会产生改动
func TestBuildPlan_BadTemplate(t *testing.T) {
	plan := BuildPlan("/tv", []model.RemoteEntry{file("Show.S01E02.mkv")}, "{bogus}")
	if len(plan.Changes) != 0 {
		t.Errorf("len(Changes) = %d, want 0", len(plan.Changes))
	}
	if len(plan.TemplateErrors) != 1 {
		t.Errorf("len(TemplateErrors) = %d, want 1", len(plan.TemplateErrors))
	}
}
