package dto

// ErrorResp 错误响应体, message 为面向调用方的描述
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
