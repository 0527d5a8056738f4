/*
 * @Description: 注册登录等认证业务逻辑
 * @Author: 沐音
 * @Date: 2025-09-15 12:08:33
 * @LastEditTime: 2025-12-05 16:20:18
 * @LastEditors: 沐音
 */
package auth

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/muselink-c/muselink-app/internal/pkg/security"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
)

// AuthService 定义了所有认证相关的业务逻辑接口
type AuthService interface {
	Register(ctx context.Context, username, email, nickname, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
}

// authService 是 AuthService 接口的实现
type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService 是 authService 的构造函数
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register 创建一个新用户，用户名与邮箱均不允许重复。
func (s *authService) Register(ctx context.Context, username, email, nickname, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if existing, err := s.userRepo.FindByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("查询用户名失败: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: 用户名已被占用", constant.ErrConflict)
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("查询邮箱失败: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: 邮箱已被注册", constant.ErrConflict)
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	if nickname == "" {
		nickname = username
	}

	newUser := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Nickname:     nickname,
		Email:        email,
		Status:       model.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	log.Printf("[AuthService] 新用户注册成功: username=%s", username)
	return newUser, nil
}

// Login 校验用户凭证。凭证错误与用户不存在返回同一个错误，避免枚举用户名。
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil || !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: 用户名或密码错误", constant.ErrUnauthorized)
	}
	if user.Status == model.UserStatusBanned {
		return nil, fmt.Errorf("%w: 账号已被封禁", constant.ErrForbidden)
	}
	if user.Status != model.UserStatusActive {
		return nil, fmt.Errorf("%w: 账号状态异常", constant.ErrForbidden)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// 登录时间更新失败不影响登录
		log.Printf("[AuthService] 更新最后登录时间失败: userID=%d, err=%v", user.ID, err)
	}

	return user, nil
}
