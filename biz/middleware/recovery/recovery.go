package recovery

import (
	"context"
	"net/http"

	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzrecovery "github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
)

func New() app.HandlerFunc {
	return hertzrecovery.Recovery(hertzrecovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err any, stack []byte) {
			hlog.CtxErrorf(ctx, "panic recovered: %v\n%s", err, stack)
			c.AbortWithStatusJSON(http.StatusInternalServerError, &dto.ErrorResp{
				Code:    int(errs.ServerError.Code()),
				Message: errs.ServerError.Msg(),
			})
		}))
}
