package redis

import (
	"context"
	"fmt"

	"join_now/be/biz/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func Init() {
	conf := config.GetRedisConf()
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(err)
	}
}

func GetRedisClient() *redis.Client {
	return client
}
