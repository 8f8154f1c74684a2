package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// window 单个客户端在时间窗口内的请求时间戳
type window struct {
	timestamps []time.Time
}

// prune 丢弃 cutoff 之前的记录
func (w *window) prune(cutoff time.Time) {
	kept := w.timestamps[:0]
	for _, t := range w.timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.timestamps = kept
}

// RateLimit 认证接口限流，按 IP + 路由计数
// 窗口内超过 maxAttempts 次返回 429
func RateLimit(maxAttempts int, period time.Duration) gin.HandlerFunc {
	var (
		mu    sync.Mutex
		store = make(map[string]*window)
	)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-period)
			for key, w := range store {
				w.prune(cutoff)
				if len(w.timestamps) == 0 {
					delete(store, key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		key := c.ClientIP() + " " + c.FullPath()
		now := time.Now()

		mu.Lock()
		w, ok := store[key]
		if !ok {
			w = &window{}
			store[key] = w
		}
		w.prune(now.Add(-period))
		if len(w.timestamps) >= maxAttempts {
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Muitas tentativas, tente novamente mais tarde",
			})
			c.Abort()
			return
		}
		w.timestamps = append(w.timestamps, now)
		mu.Unlock()
		c.Next()
	}
}
