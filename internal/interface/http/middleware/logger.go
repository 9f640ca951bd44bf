package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xiebiao/onlinebookstore/pkg/logger"
)

const (
	// RequestIDHeader 请求ID响应头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin.Context中保存请求ID的key（pkg/response记录错误日志时读取）
	RequestIDKey = "request_id"

	// slowRequestThreshold 慢请求阈值
	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
//
// 要点：
// 1. 记录每个请求的基本信息（方法、路径、耗时、状态码、客户端IP）
// 2. 请求ID优先沿用上游传入的X-Request-ID，没有时生成uuid
// 3. 5xx用error级别，4xx用warn级别，慢请求额外告警
//
// 不记录请求体（登录、注册请求中有密码）
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 请求ID
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// 步骤2: 处理请求
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		// 步骤3: 结构化日志输出
		status := c.Writer.Status()
		log := logger.Get()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str(RequestIDKey, requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP())
		if len(c.Errors) > 0 {
			event.Str("errors", c.Errors.String())
		}
		event.Msg("HTTP请求")

		// 记录慢请求警告
		if latency > slowRequestThreshold {
			log.Warn().
				Str(RequestIDKey, requestID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Dur("latency", latency).
				Msg("慢请求")
		}
	}
}
