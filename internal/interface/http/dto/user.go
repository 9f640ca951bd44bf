package dto

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
type RegisterRequest struct {
	Username string `json:"username" binding:"max=50" example:"alice"`
	Email    string `json:"email" binding:"required,email,max=100" example:"alice@example.com"`
	Password string `json:"password" binding:"required,notblank,max=72" example:"secret"`
}

// ValidationMessages 字段校验失败时的提示信息（key为字段名或"字段名.规则"）
func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"username":     "Username must be at most 50 characters",
		"email":        "Email is required",
		"email.email":  "Email should be valid",
		"email.max":    "Email must be at most 100 characters",
		"password":     "Password is required",
		"password.max": "Password must be at most 72 characters",
	}
}

// LoginRequest HTTP层登录请求
// 说明：登录只要求请求体可解析，字段缺失按凭证不匹配处理
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret"`
}
