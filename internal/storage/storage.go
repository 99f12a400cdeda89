package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

// Backend 是存储后端的能力契约，调用方只依赖这个接口。
// ListEntries 在传输失败时返回 *NetworkError；远端返回正常的错误响应时
// 只记日志并返回空列表。Rename 在远端明确拒绝时返回 (false, nil)，
// 传输失败时返回错误。
type Backend interface {
	Name() string
	RootPath() string
	ListEntries(ctx context.Context, path string) ([]model.RemoteEntry, error)
	Rename(ctx context.Context, oldPath string, newName string) (bool, error)
}

// ConfigError 表示凭证缺失或配置非法，在任何网络请求之前就会失败
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "storage config: " + e.Reason
}

// NetworkError 表示传输层失败 (超时/连接失败/响应不可解码)，由 RetryPolicy 重试
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TestConnection 列一次根目录来验证后端可达
func TestConnection(ctx context.Context, b Backend) error {
	if _, err := b.ListEntries(ctx, b.RootPath()); err != nil {
		return fmt.Errorf("连接测试失败: %w", err)
	}
	return nil
}

// JoinPath 拼接远端路径，远端统一使用 / 分隔
func JoinPath(dir, name string) string {
	p := strings.TrimSuffix(dir, "/") + "/" + name
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.ReplaceAll(p, "//", "/")
}

// ParentDir 返回远端路径的父目录
func ParentDir(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return "/"
	}
	return path[:idx]
}
