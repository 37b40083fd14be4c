package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"join_now/be/biz/config"
	"join_now/be/biz/db/redis"
	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	keySignupBlock = "signup_block:"
)

// NewSignupProtection creates a middleware that blocks further signups from
// the same IP for a while after a successful one
func NewSignupProtection() app.HandlerFunc {
	conf := config.GetSignupProtectionConf()
	blockMinutes := conf.BlockMinutes
	if blockMinutes <= 0 {
		blockMinutes = 10 // default 10 minutes
	}
	blockDuration := time.Duration(blockMinutes) * time.Minute

	return func(ctx context.Context, c *app.RequestContext) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		rdb := redis.GetRedisClient()

		// 1. Pre-check: Check if blocked
		if n, _ := rdb.Exists(ctx, "rate_limit:"+keySignupBlock+ip).Result(); n > 0 {
			c.JSON(http.StatusForbidden, dto.ErrorResp{
				Code:    int(errs.RequestBlocked.Code()),
				Message: fmt.Sprintf("Signup is temporarily blocked. Please try again after %v minutes", blockMinutes),
			})
			c.Abort()
			return
		}

		// 2. Process Request
		c.Next(ctx)

		// 3. Post-check: only a 200 means an account was created
		if c.Response.StatusCode() != http.StatusOK {
			return
		}

		if err := rdb.Set(ctx, "rate_limit:"+keySignupBlock+ip, "1", blockDuration).Err(); err != nil {
			hlog.CtxErrorf(ctx, "Failed to set signup block key: %v", err)
		} else {
			hlog.CtxInfof(ctx, "Signup protection: IP %s blocked for %v after successful signup", ip, blockDuration)
		}
	}
}
