package notify

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/xiaozhuazi/tvrename/internal/config"
	"github.com/xiaozhuazi/tvrename/internal/model"
)

// BuildReport 生成一封纯文本的重命名结果报告
func BuildReport(storageName, dir string, results []model.RenameResult) string {
	success := 0
	var failed []model.RenameResult
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "存储后端: %s\n", storageName)
	fmt.Fprintf(&b, "目录: %s\n", dir)
	fmt.Fprintf(&b, "成功: %d，失败: %d\n\n", success, len(failed))

	for _, r := range results {
		if r.Success {
			fmt.Fprintf(&b, "✓ %s → %s\n", r.OldName, r.NewName)
		} else {
			fmt.Fprintf(&b, "✗ %s (%s)\n", r.OldName, r.Error)
		}
	}

	b.WriteString("\n──\n小爪子 🐾\n")
	return b.String()
}

// SendReport 通过 SMTP 发送报告。端口 465 走 SSL，其余端口走 STARTTLS。
// 凭证缺失直接报错，不发起连接。
func SendReport(cfg config.MailConfig, subject, body string) error {
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("邮件配置不完整: 请填写 username 和 password (授权码，不是登录密码)")
	}
	if cfg.To == "" {
		return fmt.Errorf("邮件配置不完整: 请填写收件人 to")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.Username)
	m.SetHeader("To", cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	// gomail 对 465 端口自动使用 SSL，其余端口在服务器支持时升级 STARTTLS
	d.SSL = cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	return nil
}
