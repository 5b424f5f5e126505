/* rate_limit.go
 * Contains the per IP rate limiting middleware for the web server
 * Authors: Zachary Bower
 */

package web

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRateLimit = rate.Limit(5)
	defaultBurst     = 20
	visitorTTL       = 10 * time.Minute
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func newVisitorLimiter(limit rate.Limit, burst int) *visitorLimiter {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// getVisitor returns the limiter for an IP, creating one on first sight. Visitors idle for longer than visitorTTL
// are dropped on the way
func (l *visitorLimiter) getVisitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// clientIP strips the port from the remote address
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware applies a per-IP rate limit to every route.
func (l *visitorLimiter) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.getVisitor(clientIP(r)).Allow() {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please slow down."})
			return
		}
		next.ServeHTTP(w, r)
	})
}
