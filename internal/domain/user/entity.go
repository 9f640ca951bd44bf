package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. Email是登录时的查找键，但不保证唯一（同一邮箱重复注册会产生两条记录）
// 2. Password保存的是PasswordEncoder编码后的值，默认编码器不做任何变换
// 3. 领域实体不依赖GORM tag
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// encodedPassword必须是PasswordEncoder.Encode的结果
func NewUser(username, email, encodedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  encodedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
