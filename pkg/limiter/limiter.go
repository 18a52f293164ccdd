package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu        sync.Mutex
	items     map[string]*visitor
	rps       int
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func newVisitors(rps, burst int, ttl time.Duration) *visitors {
	return &visitors{
		items: make(map[string]*visitor),
		rps:   rps,
		burst: burst,
		ttl:   ttl,
	}
}

func (v *visitors) get(ip string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.ttl > 0 && now.Sub(v.lastSweep) >= v.ttl {
		v.evict(now)
		v.lastSweep = now
	}

	item, ok := v.items[ip]
	if !ok {
		item = &visitor{limiter: rate.NewLimiter(rate.Limit(v.rps), v.burst)}
		v.items[ip] = item
	}
	item.lastSeen = now

	return item.limiter
}

func (v *visitors) cleanup(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.evict(now)
}

// evict drops clients idle for longer than ttl. Callers hold mu.
func (v *visitors) evict(now time.Time) {
	if v.ttl <= 0 {
		return
	}
	for ip, item := range v.items {
		if now.Sub(item.lastSeen) > v.ttl {
			delete(v.items, ip)
		}
	}
}

// Limit rate limits requests per client ip. Idle clients are forgotten after
// ttl, swept at most once per ttl while requests arrive. A ttl <= 0 keeps them.
func Limit(rps, burst int, ttl time.Duration) gin.HandlerFunc {
	v := newVisitors(rps, burst, ttl)

	return func(c *gin.Context) {
		if !v.get(c.ClientIP(), time.Now()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
