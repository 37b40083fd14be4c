package db

import (
	"join_now/be/biz/db/mysql"
	"join_now/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
