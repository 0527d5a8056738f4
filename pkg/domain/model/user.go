// in pkg/domain/model/user.go
package model

import "time"

// ========= 业务常量 (与数据库实现无关) =========

// 用户状态常量定义了用户的几种不同状态
const (
	UserStatusActive   = 1
	UserStatusInactive = 2
	UserStatusBanned   = 3
)

// ========= 领域模型定义 =========

type User struct {
	ID           uint       `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Nickname     string     `json:"nickname"`
	Avatar       string     `json:"avatar"`
	Email        string     `json:"email"`
	Bio          string     `json:"bio"`
	Website      string     `json:"website"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	Status       int        `json:"status"`
}

// UserProfile 是对外展示的用户信息（不含敏感字段，ID 为公共ID）。
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	Website   string    `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileParams 更新个人资料的参数
type UpdateProfileParams struct {
	Nickname *string `json:"nickname"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
}
