package user

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/user"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调领域服务
// 2. 当前注册用例比较简单，只调用一个领域服务
// 3. HTTP响应体为空，Execute仍返回新用户信息（不含密码）
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	// 1. 调用领域服务执行注册
	u, err := uc.userService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()

	// 2. 领域实体 → 应用层DTO
	return &RegisterResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// RegisterResponse 注册响应
// 说明：不返回密码字段
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
