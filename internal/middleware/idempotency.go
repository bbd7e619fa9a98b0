package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Context keys read by handlers that release the lock and cache the response.
const (
	CtxIdempotencyCacheKey = "idempotency_cache_key"
	CtxIdempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency guards POST routes against duplicate submissions. A client that
// sends an Idempotency-Key gets the cached response on replay, and concurrent
// replays are rejected while the first request still holds the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		employeeID := c.GetInt64(CtxEmployeeID)

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), strconv.FormatInt(employeeID, 10), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			json.Unmarshal([]byte(val), &cachedRes)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true, "data": cachedRes})
			return
		}

		// Short-lived lock; expires on its own if the server dies mid-request.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "This request is already being processed",
			})
			return
		}

		c.Set(CtxIdempotencyCacheKey, cacheKey)
		c.Set(CtxIdempotencyLockKey, lockKey)

		c.Next()
	}
}
