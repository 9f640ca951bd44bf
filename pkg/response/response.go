package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
	"github.com/xiebiao/onlinebookstore/pkg/logger"
)

// ErrorBody 错误响应结构
// 设计说明：
// 1. 成功响应直接返回业务数据（图书数组、图书对象、纯文本），与前端约定保持一致
// 2. 失败响应统一使用ErrorBody，HTTP状态码由错误码区间决定
// 3. Errors仅在参数校验失败时返回，key为JSON字段名
type ErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON 返回200和JSON数据
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Text 返回200和纯文本
func Text(c *gin.Context, text string) {
	c.String(http.StatusOK, text)
}

// OK 返回200空响应体
func OK(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err := h.addBookUseCase.Execute(ctx, req); err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只记录日志，不返回给客户端
	if appErr.Err != nil || status >= http.StatusInternalServerError {
		logger.Get().Error().
			Err(err).
			Int("code", appErr.Code).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg(appErr.Message)
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
