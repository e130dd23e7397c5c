package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mwilkosz/Meta-Back-End-Developer/utils"
)

const (
	// once the map holds this many users, stale buckets are pruned before
	// a new one is added
	limiterPruneAt = 4096
	limiterIdleTTL = 10 * time.Minute
)

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// limiterPool hands out one token bucket per user and evicts buckets idle
// past limiterIdleTTL so the map stays bounded by the active user count.
type limiterPool struct {
	mu      sync.Mutex
	rps     float64
	burst   int
	entries map[uint]*limiterEntry
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	return &limiterPool{rps: rps, burst: burst, entries: make(map[uint]*limiterEntry)}
}

func (p *limiterPool) get(uid uint, now time.Time) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[uid]; ok {
		e.seen = now
		return e.lim
	}
	if len(p.entries) >= limiterPruneAt {
		p.prune(now)
	}
	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(p.rps), p.burst), seen: now}
	p.entries[uid] = e
	return e.lim
}

// prune drops buckets not seen within limiterIdleTTL. Caller holds mu.
func (p *limiterPool) prune(now time.Time) {
	for uid, e := range p.entries {
		if now.Sub(e.seen) > limiterIdleTTL {
			delete(p.entries, uid)
		}
	}
}

// ThrottleMiddleware applies a token-bucket limit per authenticated user.
// Must run after AuthMiddleware.
func ThrottleMiddleware(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)

	return func(c *gin.Context) {
		uid := utils.CurrentUserID(c)
		if !pool.get(uid, time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "request was throttled"})
			c.Abort()
			return
		}
		c.Next()
	}
}
