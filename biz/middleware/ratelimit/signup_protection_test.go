package ratelimit

import (
	"context"
	"net/http"
	"testing"

	"join_now/be/biz/config"
	db_redis "join_now/be/biz/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/mockey"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestSignupProtection(t *testing.T) {
	// Setup Redis Mock
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer rdb.Close()

	mockey.PatchConvey("TestSignupProtection", t, func() {
		mockey.Mock(db_redis.GetRedisClient).Return(rdb).Build()
		mockey.Mock(config.GetSignupProtectionConf).Return(config.SignupProtectionConf{
			BlockMinutes: 10,
		}).Build()

		mw := NewSignupProtection()
		ctx := context.Background()
		clientIP := "127.0.0.1"

		// Helper to make a signup request with a given outcome
		makeSignupReq := func(ip string, status int) *app.RequestContext {
			c := app.NewContext(0)
			c.Request.SetRequestURI("/api/v1/account/signup")
			c.Request.Header.Set("X-Forwarded-For", ip)
			c.Response.SetStatusCode(status)
			return c
		}

		t.Run("Block Logic", func(t *testing.T) {
			mr.FlushAll()

			// 1. First Signup Success
			c := makeSignupReq(clientIP, http.StatusOK)
			mw(ctx, c)
			assert.False(t, c.IsAborted())

			// Verify Block Key exists
			exists, _ := rdb.Exists(ctx, "rate_limit:"+keySignupBlock+clientIP).Result()
			assert.Equal(t, int64(1), exists)

			// 2. Second Signup (Should be Blocked)
			c = app.NewContext(0)
			c.Request.SetRequestURI("/api/v1/account/signup")
			c.Request.Header.Set("X-Forwarded-For", clientIP)
			mw(ctx, c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, consts.StatusForbidden, c.Response.StatusCode())
			assert.Contains(t, string(c.Response.Body()), "10 minutes")
		})

		t.Run("Fail Should Not Block", func(t *testing.T) {
			mr.FlushAll()

			// 1. Signup rejected by validation
			c := makeSignupReq(clientIP, http.StatusBadRequest)
			mw(ctx, c)
			assert.False(t, c.IsAborted())

			// Verify Block Key NOT exists
			exists, _ := rdb.Exists(ctx, "rate_limit:"+keySignupBlock+clientIP).Result()
			assert.Equal(t, int64(0), exists)

			// 2. Second Signup (Should Pass)
			c = makeSignupReq(clientIP, http.StatusOK)
			mw(ctx, c)
			assert.False(t, c.IsAborted())
		})

		t.Run("Different IP", func(t *testing.T) {
			mr.FlushAll()

			// IP A Success
			c := makeSignupReq("1.1.1.1", http.StatusOK)
			mw(ctx, c)

			// IP B Should Pass
			c = makeSignupReq("2.2.2.2", http.StatusOK)
			mw(ctx, c)
			assert.False(t, c.IsAborted())
		})
	})
}
