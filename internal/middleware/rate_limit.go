package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// RateLimit limits requests per client IP using a fixed redis window.
// The counter key expires after the window, so a redis outage fails
// open rather than locking everyone out.
func RateLimit(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := database.RedisClient.Incr(database.Ctx, key).Result()
		if err != nil {
			zap.L().Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			database.RedisClient.Expire(database.Ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, utils.NewErrorResponse(http.StatusTooManyRequests, "Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
