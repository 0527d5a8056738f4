/*
 * @Description: 用户资料服务
 * @Author: 沐音
 * @Date: 2025-09-15 13:30:47
 * @LastEditTime: 2025-11-20 18:42:31
 * @LastEditors: 沐音
 */
package user

import (
	"context"
	"fmt"
	"log"

	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

// Service 定义了用户资料相关的业务接口。
type Service interface {
	// GetProfile 获取当前登录用户的资料
	GetProfile(ctx context.Context, userDBID uint) (*model.UserProfile, error)
	// GetPublicProfile 按公共ID获取用户的公开资料
	GetPublicProfile(ctx context.Context, userPublicID string) (*model.UserProfile, error)
	// UpdateProfile 更新当前登录用户的资料
	UpdateProfile(ctx context.Context, userDBID uint, params *model.UpdateProfileParams) (*model.UserProfile, error)
}

type service struct {
	userRepo repository.UserRepository
}

// NewService 是用户资料服务的构造函数。
func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// toProfile 将用户领域模型转换为对外的资料视图。
func toProfile(u *model.User) (*model.UserProfile, error) {
	publicID, err := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	if err != nil {
		log.Printf("[严重错误] 生成用户公共ID失败: dbID=%d, error=%v", u.ID, err)
		return nil, constant.ErrInternalServer
	}
	return &model.UserProfile{
		ID:        publicID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		Website:   u.Website,
		CreatedAt: u.CreatedAt,
	}, nil
}

// GetProfile 获取当前登录用户的资料。
func (s *service) GetProfile(ctx context.Context, userDBID uint) (*model.UserProfile, error) {
	u, err := s.userRepo.FindByID(ctx, userDBID)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrNotFound)
	}
	return toProfile(u)
}

// GetPublicProfile 按公共ID获取用户的公开资料。
func (s *service) GetPublicProfile(ctx context.Context, userPublicID string) (*model.UserProfile, error) {
	userDBID, err := idgen.DecodePublicIDWithType(userPublicID, idgen.EntityTypeUser)
	if err != nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrNotFound)
	}
	return s.GetProfile(ctx, userDBID)
}

// UpdateProfile 更新当前登录用户的资料，nil 字段不修改。
func (s *service) UpdateProfile(ctx context.Context, userDBID uint, params *model.UpdateProfileParams) (*model.UserProfile, error) {
	u, err := s.userRepo.FindByID(ctx, userDBID)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrNotFound)
	}

	if params.Nickname != nil {
		u.Nickname = *params.Nickname
	}
	if params.Avatar != nil {
		u.Avatar = *params.Avatar
	}
	if params.Bio != nil {
		u.Bio = *params.Bio
	}
	if params.Website != nil {
		u.Website = *params.Website
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("更新用户资料失败: %w", err)
	}
	return toProfile(u)
}
