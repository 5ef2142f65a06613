package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPLimiter holds one token bucket per client IP.
type IPLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewIPLimiter allows perMinute events per IP, with bursts up to the same
// amount. A non-positive perMinute disables limiting.
func NewIPLimiter(perMinute int) *IPLimiter {
	l := &IPLimiter{limiters: make(map[string]*rate.Limiter), now: time.Now}
	if perMinute <= 0 {
		l.limit = rate.Inf
		return l
	}
	l.limit = rate.Every(time.Minute / time.Duration(perMinute))
	l.burst = perMinute
	return l
}

func (l *IPLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *IPLimiter) Allow(ip string) bool {
	if l.limit == rate.Inf {
		return true
	}
	return l.getLimiter(ip).AllowN(l.now(), 1)
}

// Sweep drops the buckets that have refilled completely. A full bucket
// behaves exactly like a new one, so no client gains anything from it.
func (l *IPLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	dropped := 0
	for ip, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, ip)
			dropped++
		}
	}
	return dropped
}
