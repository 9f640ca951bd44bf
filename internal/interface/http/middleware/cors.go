package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
)

// CORS 跨域资源共享中间件
//
// 要点：
// 1. 只允许配置的一个前端来源（默认http://localhost:4200）
// 2. 允许所有请求头，方法限定为GET/POST/PUT/DELETE
// 3. 预检请求（OPTIONS）由gin-contrib/cors直接应答
//
// 不允许"*"（config.validate已经拦截）
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  []string{cfg.AllowOrigin},
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        cfg.MaxAge,
	})
}
