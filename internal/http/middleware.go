package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haseebk/dev-net/internal/metrics"
	"github.com/haseebk/dev-net/internal/repo"
	"github.com/haseebk/dev-net/internal/security"
)

const (
	uidKey   = "uid"
	reqIDKey = "X-Request-ID"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(reqIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(reqIDKey, id)
		c.Writer.Header().Set(reqIDKey, id)
		c.Next()
	}
}

// AuthJWT rejects requests without a bearer token (distinct body from an
// invalid one) and stores the verified uid in the gin context.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		tok := strings.TrimSpace(h[len("Bearer "):])
		claims, err := security.ParseAccess(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(uidKey, uid)
		c.Next()
	}
}

// RateLimit is a fixed-window per-IP limiter backed by redis. A nil client
// disables it (tests, local runs without redis).
func RateLimit(rds *repo.Redis, perMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rds == nil || perMin <= 0 {
			c.Next()
			return
		}
		key := "rl:" + c.ClientIP() + ":" + c.FullPath()
		n, err := rds.C.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// redis being down must not take auth down with it
			c.Next()
			return
		}
		if n == 1 {
			rds.C.Expire(c.Request.Context(), key, time.Minute)
		}
		if n > int64(perMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.InFlight.Inc()
		c.Next()
		metrics.InFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ReqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
