// internal/app/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/muselink-c/muselink-app/internal/pkg/auth"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/idgen"
	"github.com/muselink-c/muselink-app/pkg/response"
	service_auth "github.com/muselink-c/muselink-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional 是一个可选的JWT认证中间件
// 如果没有Token，允许游客访问；如果有Token但过期，返回401触发自动刷新
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next() // 没有Token，直接放行（游客）
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next() // Token格式不正确，直接放行（游客）
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			// Token无效或过期，返回401触发前端自动刷新token
			response.Fail(c, http.StatusUnauthorized, "Token已过期")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserDBID 从上下文中取出当前登录用户的内部数据库ID。
// 供挂在 JWTAuth 后面的 Handler 使用。
func CurrentUserDBID(c *gin.Context) (uint, error) {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0, constant.ErrUnauthorized
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return 0, constant.ErrUnauthorized
	}
	userDBID, err := idgen.DecodePublicIDWithType(claims.UserID, idgen.EntityTypeUser)
	if err != nil {
		return 0, constant.ErrInvalidToken
	}
	return userDBID, nil
}

// OptionalUserDBID 与 CurrentUserDBID 类似，但游客返回 0 而不是错误。
// 供挂在 JWTAuthOptional 后面的 Handler 使用。
func OptionalUserDBID(c *gin.Context) uint {
	userDBID, err := CurrentUserDBID(c)
	if err != nil {
		return 0
	}
	return userDBID
}
