/*
 * @Description: 用户仓储接口
 * @Author: 沐音
 * @Date: 2025-09-02 14:20:11
 * @LastEditTime: 2025-11-20 18:42:31
 * @LastEditors: 沐音
 */
package repository

import (
	"context"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// UserRepository 定义了所有用户数据操作的契约。
type UserRepository interface {
	// 嵌入基础接口，自动获得 FindByID, Create, Update, Delete 等方法
	BaseRepository[model.User]

	// FindByUsername 根据用户名(string)查找用户
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByEmail 根据邮箱(string)查找用户
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByIDs 批量查找用户，返回以内部ID为键的映射（用于列表联查展示）
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error)

	// UpdateLastLogin 更新用户最后登录时间
	UpdateLastLogin(ctx context.Context, id uint) error
}
