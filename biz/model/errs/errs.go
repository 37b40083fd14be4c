package errs

import "fmt"

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success        = New(0, "success")
	ServerError    = New(1_0001, "internal server error")
	ParamError     = New(1_0002, "param error")
	TooManyRequest = New(1_0003, "too many request")
	RequestBlocked = New(1_0004, "request is blocked")

	MissingParamErr    = New(2_0001, "missing param")
	InvalidParamErr    = New(2_0002, "invalid param")
	EmailDuplicatedErr = New(2_0003, "email already registered")
)

// MissingParam 缺少必填参数, 消息中指明参数名
func MissingParam(param string) Error {
	return MissingParamErr.SetMsg(fmt.Sprintf("missing param: %s", param))
}

// InvalidParam 参数校验不通过, 消息中指明参数名
func InvalidParam(param string) Error {
	return InvalidParamErr.SetMsg(fmt.Sprintf("invalid param: %s", param))
}
