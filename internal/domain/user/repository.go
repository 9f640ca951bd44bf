package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户，成功后回填ID
	Create(ctx context.Context, user *User) error

	// FindByEmail 根据邮箱查找用户（同邮箱多条记录时返回最早注册的一条）
	// 如果不存在，返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)
}
