package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLimiterPoolReusesBucketPerUser(t *testing.T) {
	p := newLimiterPool(1, 1)
	now := time.Now()

	a := p.get(7, now)
	if b := p.get(7, now.Add(time.Second)); b != a {
		t.Fatal("same user should get the same bucket")
	}
	if c := p.get(8, now); c == a {
		t.Fatal("different users should get different buckets")
	}
}

func TestLimiterPoolPrunesIdleBuckets(t *testing.T) {
	p := newLimiterPool(1, 1)
	now := time.Now()

	for uid := uint(1); uid <= limiterPruneAt; uid++ {
		p.get(uid, now)
	}
	if len(p.entries) != limiterPruneAt {
		t.Fatalf("expected %d buckets, got %d", limiterPruneAt, len(p.entries))
	}

	// the next insert lands after everyone else went idle
	p.get(limiterPruneAt+1, now.Add(limiterIdleTTL+time.Minute))
	if len(p.entries) != 1 {
		t.Fatalf("idle buckets should be pruned, %d left", len(p.entries))
	}
}

func TestThrottleMiddlewareReturns429PastBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userId", uint(1)) })
	r.Use(ThrottleMiddleware(0.001, 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be throttled, got %v", codes)
	}
}
