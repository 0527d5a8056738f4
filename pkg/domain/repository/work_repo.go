/*
 * @Description: 音乐作品仓储接口
 * @Author: 沐音
 * @Date: 2025-09-03 11:40:02
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package repository

import (
	"context"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// WorkRepository 定义了音乐作品数据仓库的接口。
type WorkRepository interface {
	// Create 创建作品
	Create(ctx context.Context, params *model.CreateWorkParams) (*model.Work, error)

	// FindByID 根据内部ID查找作品
	FindByID(ctx context.Context, id uint) (*model.Work, error)

	// Update 按参数更新作品元信息（nil 字段不修改）
	Update(ctx context.Context, id uint, params *model.UpdateWorkParams) (*model.Work, error)

	// UpdateCanonicalFile 改写作品的权威文件引用与大小。
	// 只允许合并协调逻辑在审批事务内调用。
	UpdateCanonicalFile(ctx context.Context, id uint, filePath string, fileSize int64) error

	// Delete 软删除作品
	Delete(ctx context.Context, id uint) error

	// ListByUser 分页查询某用户的作品
	ListByUser(ctx context.Context, userDBID uint, page, pageSize int) ([]model.WorkListItem, int64, error)

	// ListLatest 分页查询最新公开作品
	ListLatest(ctx context.Context, page, pageSize int) ([]model.WorkListItem, int64, error)

	// IncrementPlayCount 将作品播放数增加 delta（由定时任务批量回写）
	IncrementPlayCount(ctx context.Context, id uint, delta int64) error

	// SetStarCount 重置作品收藏数（由定时任务按收藏表对账）
	SetStarCount(ctx context.Context, id uint, count int64) error
}
