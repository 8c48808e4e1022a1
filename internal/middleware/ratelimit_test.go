package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rl := NewRateLimiter(ctx, "test", 0.001, 2)
	r := gin.New()
	r.GET("/ping", rl.LimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1000"))

	// buckets are per client
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:1000"))
}

func TestSweepDropsIdleVisitors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rl := NewRateLimiter(ctx, "test", 1, 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getVisitor("10.0.0.1")
	now = now.Add(visitorIdle / 2)
	rl.getVisitor("10.0.0.2")
	now = now.Add(visitorIdle/2 + time.Second)

	assert.Equal(t, 1, rl.sweep())
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
