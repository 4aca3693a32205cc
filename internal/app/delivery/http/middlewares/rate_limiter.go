package middlewares

import (
	"errors"
	"net"
	"net/http"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket with temporary blocking, used on the
// submission endpoint where each request triggers scoring and several writes.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
}

func NewRateLimiter(rps int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		log:       logger,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				retryAfter := int(time.Until(blockedUntil).Seconds()) + 1
				r.mu.Unlock()

				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("ip temporarily blocked")))
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.mu.Unlock()

			r.log.Warn("ip blocked for exceeding submission rate",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.Duration("block_time", r.blockTime),
			)

			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(r.blockTime.Seconds())))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("submission rate exceeded")))
			return
		}

		next.ServeHTTP(w, req)
	})
}
