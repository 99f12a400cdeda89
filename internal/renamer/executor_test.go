package renamer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

// fakeBackend 按 oldPath 结尾的文件名决定行为：fail.* 返回业务失败，
// boom.* 返回传输错误，其余成功。
type fakeBackend struct {
	calls []string
}

func (f *fakeBackend) Name() string     { return "fake" }
func (f *fakeBackend) RootPath() string { return "/" }

func (f *fakeBackend) ListEntries(ctx context.Context, path string) ([]model.RemoteEntry, error) {
	return nil, nil
}

func (f *fakeBackend) Rename(ctx context.Context, oldPath, newName string) (bool, error) {
	f.calls = append(f.calls, oldPath)
	switch {
	case strings.HasSuffix(oldPath, "boom.mkv"):
		return false, errors.New("connection reset")
	case strings.HasSuffix(oldPath, "fail.mkv"):
		return false, nil
	}
	return true, nil
}

func TestExecutorApply_FailureIsolation(t *testing.T) {
	changes := []model.RenameChange{
		{OldName: "a.mkv", NewName: "S01E01.mkv"},
		{OldName: "fail.mkv", NewName: "S01E02.mkv"},
		{OldName: "boom.mkv", NewName: "S01E03.mkv"},
		{OldName: "b.mkv", NewName: "S01E04.mkv"},
	}

	backend := &fakeBackend{}
	exec := &Executor{Backend: backend}
	results := exec.Apply(context.Background(), "/tv", changes)

	// 结果与输入一一对应且保持顺序，中途失败不会中断
	if len(results) != len(changes) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(changes))
	}
	for i, r := range results {
		if r.OldName != changes[i].OldName {
			t.Errorf("results[%d].OldName = %q, want %q", i, r.OldName, changes[i].OldName)
		}
	}

	if !results[0].Success || !results[3].Success {
		t.Error("expected first and last change to succeed")
	}
	if results[1].Success || results[1].Error != "API 返回失败" {
		t.Errorf("results[1] = %+v, want API failure", results[1])
	}
	if results[2].Success || results[2].Error == "" {
		t.Errorf("results[2] = %+v, want transport failure recorded", results[2])
	}

	if backend.calls[0] != "/tv/a.mkv" {
		t.Errorf("first rename path = %q, want /tv/a.mkv", backend.calls[0])
	}
}

func TestExecutorApply_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &Executor{Backend: &fakeBackend{}}
	results := exec.Apply(ctx, "/tv", []model.RenameChange{
		{OldName: "a.mkv", NewName: "S01E01.mkv"},
	})
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0 after cancellation", len(results))
	}
}

func TestSuccessCount(t *testing.T) {
	results := []model.RenameResult{
		{Success: true}, {Success: false}, {Success: true},
	}
	if n := SuccessCount(results); n != 2 {
		t.Errorf("SuccessCount = %d, want 2", n)
	}
}
