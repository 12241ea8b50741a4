package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gassama94/drf-api/internal/shared/httpx"
)

type Limiter struct{ R *redis.Client }

func New(r *redis.Client) *Limiter { return &Limiter{R: r} }

func (l *Limiter) AllowSliding(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := "rl:" + key
	pipe := l.R.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// LimitHTTP caps write traffic per authenticated user. Anonymous requests
// pass through; the handlers reject them with the proper 403 body anyway,
// and counting them would let strangers burn a user's quota. A limiter
// outage fails open.
func (l *Limiter) LimitHTTP(limit int64, window time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := httpx.UserFromCtx(r)
		if uid == 0 {
			next.ServeHTTP(w, r)
			return
		}
		ok, n, err := l.AllowSliding(r.Context(), fmt.Sprintf("user:%d", uid), limit, window)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			httpx.WriteJSON(w, map[string]any{
				"error": fmt.Sprintf("rate limit exceeded (count=%d, limit=%d)", n, limit),
			}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
