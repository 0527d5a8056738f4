/*
 * @Description: 作品历史版本仓储接口
 * @Author: 沐音
 * @Date: 2025-09-05 16:02:48
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package repository

import (
	"context"
	"time"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// WorkVersionRepository 定义了作品历史版本数据仓库的接口。
// 版本记录只追加，除一次性的合并标记外不允许任何修改或删除。
type WorkVersionRepository interface {
	// Create 追加一条版本记录
	Create(ctx context.Context, params *model.CreateWorkVersionParams) (*model.WorkVersion, error)

	// FindByID 根据内部ID查找版本
	FindByID(ctx context.Context, id uint) (*model.WorkVersion, error)

	// GetLatestVersion 获取作品当前最大的版本号，没有版本时返回0。
	// 必须与 Create 在同一事务内调用，配合 (work_id, version) 唯一索引
	// 保证并发提交下版本号严格单调且不重复。
	GetLatestVersion(ctx context.Context, workDBID uint) (int, error)

	// MarkMerged 将版本一次性标记为已合并，并记录合并者与时间。
	// 以 is_merged = false 为前置条件做条件更新；若版本已被合并，
	// 返回 constant.ErrVersionMerged，调用方必须让整个事务回滚。
	MarkMerged(ctx context.Context, id uint, mergedBy uint, mergedAt time.Time) error

	// ListByWork 分页获取作品的版本列表，最新提交在前
	ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkVersion, int64, error)
}
