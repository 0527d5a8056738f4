/*
 * @Description: 用户仓储实现
 * @Author: 沐音
 * @Date: 2025-09-02 15:11:37
 * @LastEditTime: 2025-11-20 18:42:31
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"time"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"

	"github.com/muselink-c/muselink-app/ent"
	"github.com/muselink-c/muselink-app/ent/user"
)

// entUserRepository 是 UserRepository 的 Ent 实现
type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

// toDomainUser 负责将 ent.User 实体转换为 model.User 领域模型。
func toDomainUser(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Avatar:       u.Avatar,
		Email:        u.Email,
		Bio:          u.Bio,
		Website:      u.Website,
		LastLoginAt:  u.LastLoginAt,
		Status:       u.Status,
	}
}

// FindByID 按内部ID查找用户
func (r *entUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(
			user.ID(id),
			user.DeletedAtIsNil(),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByUsername 按用户名查找用户
func (r *entUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(
			user.Username(username),
			user.DeletedAtIsNil(),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByEmail 按邮箱查找用户
func (r *entUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(
			user.Email(email),
			user.DeletedAtIsNil(),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByIDs 批量查找用户，返回以内部ID为键的映射
func (r *entUserRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error) {
	if len(ids) == 0 {
		return map[uint]*model.User{}, nil
	}

	entUsers, err := r.client.User.
		Query().
		Where(
			user.IDIn(ids...),
			user.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[uint]*model.User, len(entUsers))
	for _, u := range entUsers {
		result[u.ID] = toDomainUser(u)
	}
	return result, nil
}

// Create 创建一个新用户
func (r *entUserRepository) Create(ctx context.Context, u *model.User) error {
	created, err := r.client.User.
		Create().
		SetUsername(u.Username).
		SetPasswordHash(u.PasswordHash).
		SetNickname(u.Nickname).
		SetEmail(u.Email).
		SetStatus(u.Status).
		Save(ctx)
	if err != nil {
		return err
	}
	u.ID = created.ID
	u.CreatedAt = created.CreatedAt
	u.UpdatedAt = created.UpdatedAt
	return nil
}

// Update 更新一个已存在的用户
func (r *entUserRepository) Update(ctx context.Context, u *model.User) error {
	_, err := r.client.User.
		UpdateOneID(u.ID).
		SetNickname(u.Nickname).
		SetAvatar(u.Avatar).
		SetBio(u.Bio).
		SetWebsite(u.Website).
		SetStatus(u.Status).
		Save(ctx)
	return err
}

// UpdateLastLogin 更新用户最后登录时间
func (r *entUserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	_, err := r.client.User.
		UpdateOneID(id).
		SetLastLoginAt(time.Now()).
		Save(ctx)
	return err
}

// Delete 软删除用户（由 SoftDeleteMixin 的 Hook 拦截为更新 deleted_at）
func (r *entUserRepository) Delete(ctx context.Context, id uint) error {
	return r.client.User.DeleteOneID(id).Exec(ctx)
}
