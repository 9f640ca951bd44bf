package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/onlinebookstore/internal/application/user"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/dto"
	"github.com/xiebiao/onlinebookstore/pkg/response"
	"github.com/xiebiao/onlinebookstore/pkg/validator"
)

// AuthHandler 认证HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type AuthHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号，不检查邮箱是否已注册
// @Tags         认证
// @Accept       json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 "注册成功（空响应体）"
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	// 1. 绑定并验证参数
	// 学习要点：Gin的ShouldBindJSON会自动校验binding tag
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.Translate(err, req))
		return
	}

	// 2. 调用应用层用例
	// 学习要点：Handler不直接调用domain层，而是通过application层
	_, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 空响应体
	response.OK(c)
}

// Login 用户登录
// @Summary      用户登录
// @Description  校验邮箱密码，不签发Token。凭证是否正确通过响应文本区分
// @Tags         认证
// @Accept       json
// @Produce      plain
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {string} string "Login Successful 或 Invalid credentials"
// @Failure      400 {object} response.ErrorBody "请求体无法解析"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.Translate(err, req))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Text(c, result)
}
