package storage

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// RetryPolicy 用有界的指数退避包装一次远端操作。
// 只有被包装函数返回的错误会触发重试；远端返回的业务失败
// (如 code != 200) 不走这里，由后端方法直接以 false/空列表返回。
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Backoff      float64
}

// DefaultRetryPolicy 对应 Alist 后端的默认参数
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialDelay: time.Second, Backoff: 2.0}
}

// Do 执行 fn，失败则按 InitialDelay × Backoff^k 退避后重试，
// 次数用尽后原样返回最后一次的错误。等待期间响应 ctx 取消。
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		log.Warnf("%s 失败，%.1f秒后重试 (%d/%d): %v", op, delay.Seconds(), attempt, attempts, lastErr)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay = time.Duration(float64(delay) * p.Backoff)
	}

	return lastErr
}
