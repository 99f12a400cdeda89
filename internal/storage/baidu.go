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

// DefaultBaiduBaseURL 是百度网盘开放平台 xpan 接口地址
const DefaultBaiduBaseURL = "https://pan.baidu.com/rest/2.0/xpan"

// Baidu 对接百度网盘的 REST API。
// 网盘没有独立的重命名接口，重命名通过同目录 move + newname 实现。
type Baidu struct {
	client      *resty.Client
	baseURL     string
	accessToken string
	rootPath    string
	retry       RetryPolicy
}

type baiduListResponse struct {
	Errno  int    `json:"errno"`
	Errmsg string `json:"errmsg"`
	List   []struct {
		ServerFilename string `json:"server_filename"`
		Path           string `json:"path"`
		Isdir          int    `json:"isdir"`
		Size           int64  `json:"size"`
	} `json:"list"`
}

type baiduManagerResponse struct {
	Errno  int    `json:"errno"`
	Errmsg string `json:"errmsg"`
}

// NewBaidu 创建百度网盘后端，access_token 缺失时立即返回 ConfigError
func NewBaidu(accessToken, rootPath string) (*Baidu, error) {
	if accessToken == "" {
		return nil, &ConfigError{Reason: "百度网盘 access_token 不能为空"}
	}
	if rootPath == "" {
		rootPath = "/"
	}

	return &Baidu{
		client:      resty.New().SetTimeout(30 * time.Second),
		baseURL:     DefaultBaiduBaseURL,
		accessToken: accessToken,
		rootPath:    rootPath,
		retry:       RetryPolicy{MaxAttempts: 3, InitialDelay: 1500 * time.Millisecond, Backoff: 2.0},
	}, nil
}

func (b *Baidu) Name() string     { return "baidu" }
func (b *Baidu) RootPath() string { return b.rootPath }

// ListEntries 列出目录内容。响应缺少 list 字段视为业务失败，返回空列表。
func (b *Baidu) ListEntries(ctx context.Context, dir string) ([]model.RemoteEntry, error) {
	var res baiduListResponse
	var hasList bool

	err := b.retry.Do(ctx, "百度网盘列目录", func() error {
		res = baiduListResponse{}
		hasList = false

		resp, err := b.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"method":       "list",
				"dir":          dir,
				"access_token": b.accessToken,
				"order":        "name",
				"limit":        "1000",
			}).
			Get(b.baseURL + "/file")
		if err != nil {
			return &NetworkError{Op: "baidu list", Err: err}
		}
		if resp.IsError() {
			return &NetworkError{Op: "baidu list", Err: fmt.Errorf("HTTP %s", resp.Status())}
		}

		// 成功响应才携带 list 字段，错误响应只有 errno/errmsg
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(resp.Body(), &probe); err != nil {
			return &NetworkError{Op: "baidu list", Err: err}
		}
		_, hasList = probe["list"]
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			return &NetworkError{Op: "baidu list", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !hasList {
		log.Errorf("百度网盘列表失败: %s", errmsgOr(res.Errmsg))
		return []model.RemoteEntry{}, nil
	}

	entries := make([]model.RemoteEntry, 0, len(res.List))
	for _, item := range res.List {
		p := item.Path
		if p == "" {
			p = JoinPath(dir, item.ServerFilename)
		}
		entries = append(entries, model.RemoteEntry{
			Name:  item.ServerFilename,
			IsDir: item.Isdir == 1,
			Size:  item.Size,
			Path:  p,
		})
	}
	log.Debugf("baidu: %s 下找到 %d 个项目", dir, len(entries))
	return entries, nil
}

// Rename 同目录 move 实现重命名。errno != 0 返回 (false, nil)。
func (b *Baidu) Rename(ctx context.Context, oldPath, newName string) (bool, error) {
	oldPath = strings.ReplaceAll(oldPath, "\\", "/")
	parentDir := ParentDir(oldPath)

	filelist, _ := json.Marshal([]string{oldPath})
	newnames, _ := json.Marshal([]string{newName})

	var res baiduManagerResponse
	err := b.retry.Do(ctx, "百度网盘重命名", func() error {
		res = baiduManagerResponse{}
		resp, err := b.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"method":       "move",
				"access_token": b.accessToken,
				"async":        "0",
			}).
			SetFormData(map[string]string{
				"filelist": string(filelist),
				"to":       parentDir,
				"newname":  string(newnames),
			}).
			Post(b.baseURL + "/filemanager")
		if err != nil {
			return &NetworkError{Op: "baidu rename", Err: err}
		}
		if resp.IsError() {
			return &NetworkError{Op: "baidu rename", Err: fmt.Errorf("HTTP %s", resp.Status())}
		}
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			return &NetworkError{Op: "baidu rename", Err: err}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if res.Errno != 0 {
		log.Errorf("重命名失败 [%s]: %s", path.Base(oldPath), errmsgOr(res.Errmsg))
		return false, nil
	}
	log.Infof("重命名成功: %s → %s", path.Base(oldPath), newName)
	return true, nil
}

func errmsgOr(msg string) string {
	if msg == "" {
		return "未知错误"
	}
	return msg
}
