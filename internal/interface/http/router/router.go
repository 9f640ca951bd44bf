package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/onlinebookstore/docs" // swag生成的API文档
	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/handler"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/middleware"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
	"github.com/xiebiao/onlinebookstore/pkg/validator"
)

// NewEngine 创建并配置Gin引擎
// 要点：
// 1. 中间件顺序：Recovery → Logger（生成请求ID）→ Metrics → CORS
// 2. 业务路由挂在/api下，与前端约定保持一致
// 3. release模式不暴露Swagger文档
func NewEngine(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
) (*gin.Engine, error) {
	// 设置运行模式（debug | release | test）
	gin.SetMode(cfg.Server.Mode)

	// 注册自定义校验规则（notblank、JSON字段名）
	if err := validator.Setup(); err != nil {
		return nil, err
	}
	metrics.InitMetrics()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档：http://localhost:8080/swagger/index.html
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		// 认证模块（无会话，无需登录）
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		// 图书模块
		books := api.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/search", bookHandler.SearchBooks)
			books.POST("", bookHandler.AddBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}
	}

	return r, nil
}
