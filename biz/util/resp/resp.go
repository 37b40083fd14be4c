package resp

import (
	"net/http"

	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

// Response is the single value a controller produces per request.
type Response struct {
	StatusCode int
	Body       any
}

// Ok wraps data into a 200 response. The body is passed through untouched.
func Ok(data any) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       data,
	}
}

// BadRequest wraps a validation error into a 400 response.
func BadRequest(bizErr errs.Error) Response {
	return Response{
		StatusCode: http.StatusBadRequest,
		Body: &dto.ErrorResp{
			Code:    int(bizErr.Code()),
			Message: bizErr.Msg(),
		},
	}
}

// ServerError builds the fixed 500 response. The underlying failure is
// never part of the body.
func ServerError() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body: &dto.ErrorResp{
			Code:    int(errs.ServerError.Code()),
			Message: errs.ServerError.Msg(),
		},
	}
}

func Write(c *app.RequestContext, r Response) {
	c.JSON(r.StatusCode, r.Body)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.ErrorResp{
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
