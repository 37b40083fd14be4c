package handler

import (
	"context"
	"net/http"

	"join_now/be/biz/controller/signup"
	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"
	"join_now/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Signup 账号注册接口
//
//	@Tags			account
//	@Summary		账号注册接口
//	@Description	账号注册接口
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.SignupReq	true	"signup request body"
//	@Success		200	{object}	domain.Account
//	@Failure		400	{object}	dto.ErrorResp
//	@Failure		500	{object}	dto.ErrorResp
//	@Router			/api/v1/account/signup [POST]
func Signup(ctx context.Context, c *app.RequestContext) {
	var req dto.SignupReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	resp.Write(c, signup.NewDefault().Handle(ctx, &req))
}

// Ping 健康检查接口
//
//	@Tags			ops
//	@Summary		健康检查接口
//	@Produce		json
//	@Success		200	{object}	dto.PingResp
//	@Router			/ping [GET]
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, dto.PingResp{Message: "pong"})
}
