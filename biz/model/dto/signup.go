package dto

// SignupReq 注册请求体.
// 字段是否缺失由 signup controller 按固定顺序检查, 这里只限制长度.
type SignupReq struct {
	Name                 string `json:"name" validate:"omitempty,max=64"`
	Email                string `json:"email" validate:"omitempty,max=64"`
	Password             string `json:"password" validate:"omitempty,max=128"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"omitempty,max=128"`
}

type PingResp struct {
	Message string `json:"message"`
}
