/*
 * @Description: JWT Claims 类型定义
 * @Author: 沐音
 * @Date: 2025-09-02 11:08:17
 * @LastEditTime: 2025-09-02 11:08:25
 * @LastEditors: 沐音
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索整个用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// UserID 存储的是用户的公共 ID 字符串表示。
type CustomClaims struct {
	UserID   string `json:"user_id"`  // 用户公共ID
	Username string `json:"username"` // 用户账号
	jwt.RegisteredClaims
}
