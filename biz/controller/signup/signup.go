package signup

import (
	"context"

	"join_now/be/biz/model/domain"
	"join_now/be/biz/model/dto"
	"join_now/be/biz/model/errs"
	"join_now/be/biz/service/account"
	"join_now/be/biz/util/resp"
	"join_now/be/biz/util/validation"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// AccountCreator persists a new account and yields the created value.
type AccountCreator interface {
	Add(ctx context.Context, param account.AddParam) (*domain.Account, error)
}

type Controller struct {
	emails   validation.EmailValidator
	accounts AccountCreator
}

func New(emails validation.EmailValidator, accounts AccountCreator) *Controller {
	return &Controller{emails: emails, accounts: accounts}
}

func NewDefault() *Controller {
	return New(validation.NewEmailValidator(), account.NewDefault())
}

// requiredFields 按固定顺序检查, 命中第一个缺失项即返回
var requiredFields = []string{"name", "email", "password", "passwordConfirmation"}

// Handle runs the signup checks in order and always yields exactly one
// response. Collaborator panics are absorbed into a generic 500 here.
func (ctrl *Controller) Handle(ctx context.Context, req *dto.SignupReq) (r resp.Response) {
	defer func() {
		if p := recover(); p != nil {
			hlog.CtxErrorf(ctx, "signup recovered: %v", p)
			r = resp.ServerError()
		}
	}()

	for _, field := range requiredFields {
		if fieldValue(req, field) == "" {
			return resp.BadRequest(errs.MissingParam(field))
		}
	}

	if req.Password != req.PasswordConfirmation {
		return resp.BadRequest(errs.InvalidParam("passwordConfirmation"))
	}

	if !ctrl.emails.IsValid(req.Email) {
		return resp.BadRequest(errs.InvalidParam("email"))
	}

	created, err := ctrl.accounts.Add(ctx, account.AddParam{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		hlog.CtxErrorf(ctx, "accounts.Add err: %v", err)
		return resp.ServerError()
	}

	return resp.Ok(created)
}

func fieldValue(req *dto.SignupReq, field string) string {
	switch field {
	case "name":
		return req.Name
	case "email":
		return req.Email
	case "password":
		return req.Password
	case "passwordConfirmation":
		return req.PasswordConfirmation
	}
	return ""
}
