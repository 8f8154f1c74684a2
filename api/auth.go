package api

import (
	"fintrack/config"
	"fintrack/middleware"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100" example:"ana@example.com"`
	Name     string `json:"name" binding:"required,max=100" example:"Ana"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ana@example.com"`
	Password string `json:"password" example:"password123"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建账号并直接登录，返回会话 token。邮箱全局唯一。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=service.Session} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "邮箱已注册"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}

	sess, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgUserCreated, sess)
}

// Login 用户登录
// @Summary 用户登录
// @Description 按邮箱登录获取会话 token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=service.Session} "登录成功"
// @Failure 401 {object} Response "凭证无效"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgLoggedIn, sess)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 吊销当前 token；未携带或已失效的 token 同样返回成功
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "已退出"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(middleware.BearerToken(c))
	Success(c, service.MsgLoggedOut, nil)
}

// Me 获取当前用户
// @Summary 获取当前用户
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	if user == nil {
		Fail(c, service.ErrNotAuthenticated)
		return
	}
	Success(c, "success", user)
}
