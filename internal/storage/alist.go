package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

// Alist 对接 Alist / OpenList 的 REST API
type Alist struct {
	client   *resty.Client
	baseURL  string
	rootPath string
	retry    RetryPolicy
}

type alistListResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"message"`
	Data struct {
		Content []struct {
			Name  string `json:"name"`
			IsDir bool   `json:"is_dir"`
			Size  int64  `json:"size"`
		} `json:"content"`
	} `json:"data"`
}

type alistRenameResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"message"`
}

// NewAlist 创建 Alist 后端。base_url 或 token 缺失时立即返回 ConfigError，
// 不会发出任何网络请求。
func NewAlist(baseURL, token, rootPath string) (*Alist, error) {
	if baseURL == "" {
		return nil, &ConfigError{Reason: "alist base_url 不能为空"}
	}
	if token == "" {
		return nil, &ConfigError{Reason: "alist token 不能为空"}
	}
	if rootPath == "" {
		rootPath = "/"
	}

	c := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", token).
		SetHeader("Content-Type", "application/json")

	return &Alist{
		client:   c,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		rootPath: rootPath,
		retry:    DefaultRetryPolicy(),
	}, nil
}

func (a *Alist) Name() string     { return "alist" }
func (a *Alist) RootPath() string { return a.rootPath }

// ListEntries 列出目录内容。远端返回非 200 的业务码时记日志并返回空列表。
func (a *Alist) ListEntries(ctx context.Context, dir string) ([]model.RemoteEntry, error) {
	payload := map[string]interface{}{
		"path":     dir,
		"password": "",
		"page":     1,
		"per_page": 0,
		"refresh":  false,
	}

	var res alistListResponse
	err := a.retry.Do(ctx, "alist 列目录", func() error {
		res = alistListResponse{}
		resp, err := a.client.R().
			SetContext(ctx).
			SetBody(payload).
			Post(a.baseURL + "/api/fs/list")
		if err != nil {
			return &NetworkError{Op: "alist list", Err: err}
		}
		if resp.IsError() {
			return &NetworkError{Op: "alist list", Err: fmt.Errorf("HTTP %s", resp.Status())}
		}
		// 响应不可解码按瞬时故障处理
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			return &NetworkError{Op: "alist list", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Code != 200 {
		log.Errorf("Alist 列表失败 [%d]: %s", res.Code, res.Msg)
		return []model.RemoteEntry{}, nil
	}

	entries := make([]model.RemoteEntry, 0, len(res.Data.Content))
	for _, item := range res.Data.Content {
		entries = append(entries, model.RemoteEntry{
			Name:  item.Name,
			IsDir: item.IsDir,
			Size:  item.Size,
			Path:  JoinPath(dir, item.Name),
		})
	}
	log.Debugf("alist: %s 下找到 %d 个项目", dir, len(entries))
	return entries, nil
}

// Rename 重命名单个文件。远端业务失败 (重名/无权限等) 返回 (false, nil)。
func (a *Alist) Rename(ctx context.Context, oldPath, newName string) (bool, error) {
	oldPath = strings.ReplaceAll(oldPath, "\\", "/")
	payload := map[string]string{"path": oldPath, "name": newName}

	var res alistRenameResponse
	err := a.retry.Do(ctx, "alist 重命名", func() error {
		res = alistRenameResponse{}
		resp, err := a.client.R().
			SetContext(ctx).
			SetBody(payload).
			Post(a.baseURL + "/api/fs/rename")
		if err != nil {
			return &NetworkError{Op: "alist rename", Err: err}
		}
		if resp.IsError() {
			return &NetworkError{Op: "alist rename", Err: fmt.Errorf("HTTP %s", resp.Status())}
		}
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			return &NetworkError{Op: "alist rename", Err: err}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if res.Code != 200 {
		log.Errorf("重命名失败 [%s]: %s", path.Base(oldPath), res.Msg)
		return false, nil
	}
	log.Infof("重命名成功: %s → %s", path.Base(oldPath), newName)
	return true, nil
}
