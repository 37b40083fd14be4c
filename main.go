package main

import (
	"flag"

	"join_now/be/biz/config"
	"join_now/be/biz/db"
	"join_now/be/biz/handler"
	"join_now/be/biz/middleware"
	"join_now/be/biz/middleware/ratelimit"
	"join_now/be/biz/util/logger"
	_ "join_now/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

func NewEngine() *server.Hertz {
	h := server.New(server.WithHostPorts(":8888"))
	h.Use(middleware.Suite()...)

	h.GET("/ping", handler.Ping)
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := h.Group("/api/v1")
	accountGroup := apiV1.Group("/account")
	accountGroup.POST("/signup", ratelimit.NewSignupProtection(), handler.Signup)

	return h
}

// @title						join_now api
// @version					1.0
// @description				账号注册服务
// @BasePath					/
func main() {
	confPath := flag.String("conf", "./conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	NewEngine().Spin()
}
