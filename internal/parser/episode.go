package parser

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

// VideoExts 是工具认可的视频扩展名集合 (小写、带点)
var VideoExts = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".m4v": true, ".ts": true, ".rmvb": true,
}

// IsVideoFile 按扩展名判断是否为视频文件
func IsVideoFile(name string) bool {
	return VideoExts[strings.ToLower(filepath.Ext(name))]
}

// episodeRule 一条识别规则：正则 + 捕获组数。
// groups == 2 时捕获 (季, 集)，== 1 时只捕获集，季默认为 1。
type episodeRule struct {
	re     *regexp.Regexp
	groups int
}

// 规则按优先级排列，第一条命中的规则即生效，不再尝试后续规则
var episodeRules = []episodeRule{
	{regexp.MustCompile(`(?i)s(\d+)e(\d+)`), 2},                         // S01E02
	{regexp.MustCompile(`(?i)season\s*(\d+)[\s_.]*episode\s*(\d+)`), 2}, // Season 1 Episode 2
	{regexp.MustCompile(`(\d{1,2})x(\d{2})`), 2},                        // 1x02
	{regexp.MustCompile(`第\s*(\d+)\s*[集話]`), 1},                         // 第3集 / 第3話
	{regexp.MustCompile(`(?i)ep?(\d{2,})`), 1},                          // EP03 / E03
	{regexp.MustCompile(`(\d{2,})\s*[集話]`), 1},                          // 03集
}

// MatchEpisode 从文件名解析季/集信息，无法识别时返回 nil (不是错误)。
// 匹配在去掉扩展名后的文件名上进行，不锚定位置。
func MatchEpisode(filename string) *model.EpisodeInfo {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	for _, rule := range episodeRules {
		m := rule.re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}

		season := 1
		var episode int
		if rule.groups == 2 {
			season, _ = strconv.Atoi(m[1])
			episode, _ = strconv.Atoi(m[2])
		} else {
			episode, _ = strconv.Atoi(m[1])
		}

		// 集号为 0 视为识别失败
		if episode <= 0 {
			log.Debugf("无法解析: %s (集号为 0)", filename)
			return nil
		}

		log.Debugf("解析成功 [%s]: S%02dE%02d", filename, season, episode)
		return &model.EpisodeInfo{
			Season:       season,
			Episode:      episode,
			OriginalName: filename,
		}
	}

	log.Debugf("无法解析: %s", filename)
	return nil
}
