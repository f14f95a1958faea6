package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/agency-site/pkg/common"
	"github.com/richxcame/agency-site/pkg/logger"
	"github.com/ulule/limiter/v3"
	"go.uber.org/zap"
)

// RateLimit applies per-client-IP rate limiting using the provided limiter.
// The store behind the limiter is in-memory; nothing is persisted.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.WithContext(c.Request.Context()).Error("Rate limit check failed",
				zap.String("ip", ip),
				zap.Error(err))
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}

		if lctx.Reached {
			logger.WithContext(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.Int64("limit", lctx.Limit))
			common.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
