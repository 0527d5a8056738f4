/*
 * @Description: 认证相关的控制器
 * @Author: 沐音
 * @Date: 2025-09-20 14:12:08
 * @LastEditTime: 2025-12-05 16:20:18
 * @LastEditors: 沐音
 */
package auth_handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/pkg/response"
	"github.com/muselink-c/muselink-app/pkg/service/auth"
)

// AuthHandler 封装了认证相关的控制器方法
type AuthHandler struct {
	authSvc  auth.AuthService
	tokenSvc auth.TokenService
}

// NewAuthHandler 是 AuthHandler 的构造函数
func NewAuthHandler(authSvc auth.AuthService, tokenSvc auth.TokenService) *AuthHandler {
	return &AuthHandler{
		authSvc:  authSvc,
		tokenSvc: tokenSvc,
	}
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"max=32"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 刷新令牌请求体
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// sessionResponse 登录/刷新成功后的令牌响应
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Register 处理用户注册
// @Summary      用户注册
// @Description  创建新账号，用户名与邮箱不允许重复
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterRequest  true  "注册信息"
// @Success      200  {object}  response.Response  "注册成功"
// @Failure      409  {object}  response.Response  "用户名或邮箱已存在"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Nickname, req.Password)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	accessToken, refreshToken, expiresAt, err := h.tokenSvc.GenerateSessionTokens(c.Request.Context(), user)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, sessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, "注册成功")
}

// Login 处理用户登录
// @Summary      用户登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "登录凭证"
// @Success      200  {object}  response.Response  "登录成功"
// @Failure      401  {object}  response.Response  "用户名或密码错误"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	accessToken, refreshToken, expiresAt, err := h.tokenSvc.GenerateSessionTokens(c.Request.Context(), user)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, sessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, "登录成功")
}

// Refresh 处理令牌刷新
// @Summary      刷新 Access Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  RefreshRequest  true  "刷新令牌"
// @Success      200  {object}  response.Response  "刷新成功"
// @Failure      401  {object}  response.Response  "刷新令牌无效"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	accessToken, expiresAt, err := h.tokenSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, sessionResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, "刷新成功")
}
