package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

const (
	throttleLimit  = 3
	throttleWindow = 90 * time.Second
)

// throttleCounter counts one hit against key inside the current window. ok is
// false when counting was not possible, in which case the throttle stays open.
type throttleCounter func(ctx context.Context, key string) (count int64, ok bool)

func redisCounter(ctx context.Context, key string) (int64, bool) {
	client := config.RedisClient
	if client == nil {
		return 0, false
	}

	// INCR and EXPIRE travel in one MULTI/EXEC so the key can never be left
	// without a TTL; ExpireNX re-arms the window only when none is set.
	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, throttleWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, false
	}
	return incr.Val(), true
}

// RateLimitMiddleware allows 3 requests per 90-second window per IP and
// route. Without Redis the throttle stays open.
func RateLimitMiddleware() gin.HandlerFunc {
	return rateLimitWith(redisCounter)
}

func rateLimitWith(count throttleCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("throttle:%s:%s", c.FullPath(), c.ClientIP())

		n, ok := count(c.Request.Context(), key)
		if ok && n > throttleLimit {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: "Too many requests, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
