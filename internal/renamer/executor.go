package renamer

import (
	"context"
	"time"

	"github.com/xiaozhuazi/tvrename/internal/model"
	"github.com/xiaozhuazi/tvrename/internal/storage"
)

// requestInterval 是两次远端调用之间的固定间隔，避免触发限流
const requestInterval = 200 * time.Millisecond

// Executor 把重命名计划逐条应用到存储后端。
// 单条失败只记录结果，不会中断后续条目。
type Executor struct {
	Backend storage.Backend

	// Progress 每处理完一条就被调用一次 (i 从 1 开始)，可以为 nil
	Progress func(i, total int, res model.RenameResult)
}

// Apply 严格按输入顺序逐条执行。未取消的情况下返回的结果与输入一一对应；
// ctx 在两条之间被取消时返回已收集的部分结果，已重命名的文件保持原样。
func (e *Executor) Apply(ctx context.Context, basePath string, changes []model.RenameChange) []model.RenameResult {
	results := make([]model.RenameResult, 0, len(changes))
	total := len(changes)

	for i, change := range changes {
		if ctx.Err() != nil {
			return results
		}

		oldPath := storage.JoinPath(basePath, change.OldName)
		res := model.RenameResult{OldName: change.OldName, NewName: change.NewName}

		ok, err := e.Backend.Rename(ctx, oldPath, change.NewName)
		switch {
		case err != nil:
			res.Error = err.Error()
		case !ok:
			res.Error = "API 返回失败"
		default:
			res.Success = true
		}

		results = append(results, res)
		if e.Progress != nil {
			e.Progress(i+1, total, res)
		}

		if i < total-1 {
			select {
			case <-time.After(requestInterval):
			case <-ctx.Done():
				return results
			}
		}
	}

	return results
}

// SuccessCount 统计成功条数
func SuccessCount(results []model.RenameResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}
