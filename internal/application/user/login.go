package user

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/user"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// 登录结果（前端按文本内容判断是否成功）
const (
	LoginSuccessful    = "Login Successful"
	InvalidCredentials = "Invalid credentials"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 只校验邮箱密码，不签发Token、不保存会话，每次请求独立判断
// 2. 凭证不匹配不是错误，通过返回的文本区分成功/失败
// 3. 只有存储故障才返回error
type LoginUseCase struct {
	userService user.Service
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service) *LoginUseCase {
	return &LoginUseCase{
		userService: userService,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// Execute 执行登录，返回结果文本
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (string, error) {
	ok, err := uc.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	metrics.RecordLogin(ok)
	if !ok {
		return InvalidCredentials, nil
	}
	return LoginSuccessful, nil
}
