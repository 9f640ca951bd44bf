package user

import (
	"context"
	"errors"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. 注册：编码密码后原样持久化，不检查邮箱是否已存在
// 2. 登录：只做凭证比对，不签发Token、不保存会话
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, username, email, password string) (*User, error)

	// Authenticate 校验邮箱密码
	// 邮箱不存在或密码不匹配返回(false, nil)；只有存储故障返回error
	Authenticate(ctx context.Context, email, password string) (bool, error)
}

type service struct {
	repo    Repository
	encoder PasswordEncoder
}

// NewService 创建用户服务
func NewService(repo Repository, encoder PasswordEncoder) Service {
	return &service{repo: repo, encoder: encoder}
}

// Register 用户注册
func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	// 1. 编码密码
	encoded, err := s.encoder.Encode(password)
	if err != nil {
		return nil, err
	}

	// 2. 创建实体并持久化
	user := NewUser(username, email, encoded)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate 校验邮箱密码
func (s *service) Authenticate(ctx context.Context, email, password string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.encoder.Matches(user.Password, password), nil
}
