package main

import (
	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/internal/domain/user"
	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 有些构造函数的参数不是直接的类型，需要从Config中提取

// providePasswordEncoder 根据auth.password_encoder选择密码编码器
func providePasswordEncoder(cfg *config.Config) (user.PasswordEncoder, error) {
	return user.NewPasswordEncoder(cfg.Auth.PasswordEncoder, cfg.Auth.BcryptCost)
}

// provideBookOptions 图书领域服务选项
func provideBookOptions(cfg *config.Config) book.Options {
	return book.Options{StrictDelete: cfg.Catalog.StrictDelete}
}
