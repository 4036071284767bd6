package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// bucketIdleEvict is how long a client may be silent before its bucket is
// dropped by the cleanup loop.
const bucketIdleEvict = 10 * time.Minute

// RateLimiter throttles requests per client address with token buckets.
// Vote submission is the only write endpoint open without any credential,
// so it is the one route that gets wrapped.
type RateLimiter struct {
	buckets sync.Map // client address -> *bucket
	stop    chan struct{}
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64 // refill rate
	touched  time.Time
}

// NewRateLimiter creates a limiter whose cleanup loop runs at the given
// interval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.evictIdle(cleanupInterval)
	return rl
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit caps requests at maxPerMinute per client address. Rejected requests
// get 429 with a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(r.RemoteAddr, maxPerMinute).take() {
				retryAfter := 60.0/float64(maxPerMinute) + 1
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(addr string, maxPerMinute int) *bucket {
	capacity := float64(maxPerMinute)

	val, _ := rl.buckets.LoadOrStore(addr, &bucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60.0,
		touched:  time.Now(),
	})

	return val.(*bucket)
}

// take refills the bucket for the elapsed time and spends one token.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.touched)
				b.mu.Unlock()
				if idle > bucketIdleEvict {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
