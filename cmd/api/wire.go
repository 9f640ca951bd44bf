//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/onlinebookstore/internal/application/book"
	appuser "github.com/xiebiao/onlinebookstore/internal/application/user"
	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/internal/domain/user"
	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
	"github.com/xiebiao/onlinebookstore/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/handler"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/router"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 配置由main.go加载后传入（日志初始化需要先拿到配置）
var infrastructureSet = wire.NewSet(
	mysql.NewDB, // 创建数据库连接（返回cleanup）
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository, // 用户仓储
	mysql.NewBookRepository, // 图书仓储
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	providePasswordEncoder, // 密码编码器（plaintext | bcrypt）
	provideBookOptions,     // 图书服务选项
	user.NewService,        // 用户领域服务
	book.NewService,        // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewBookHandler,
	router.NewEngine,
)

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎，以及释放数据库连接的cleanup
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
	)
	return nil, nil, nil
}
