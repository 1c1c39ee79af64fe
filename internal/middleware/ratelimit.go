package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Counter is a keyed expiring counter: one hit per key per window.
// The redis repository satisfies it in production so the limit holds
// across restarts and replicas.
type Counter interface {
	Hit(key string, window time.Duration) (bool, time.Duration, error)
}

type MemoryCounter struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{seen: make(map[string]time.Time)}
}

func (m *MemoryCounter) Hit(key string, window time.Duration) (bool, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if exp, ok := m.seen[key]; ok && now.Before(exp) {
		return false, exp.Sub(now), nil
	}
	m.seen[key] = now.Add(window)

	// Lazy prune so the map does not grow with every unique visitor.
	for k, exp := range m.seen {
		if now.After(exp) {
			delete(m.seen, k)
		}
	}
	return true, 0, nil
}

// RateLimit gates anonymous submissions to one per client address per window.
// A limiter outage must not take public submissions down, so errors let the
// request through.
func RateLimit(counter Counter, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := counter.Hit(c.ClientIP(), window)
		if err != nil {
			log.Printf("rate limiter error: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      message,
				"retryAfter": int(retryAfter.Seconds()),
			})
			return
		}
		c.Next()
	}
}
