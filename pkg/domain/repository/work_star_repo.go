/*
 * @Description: 作品收藏仓储接口
 * @Author: 沐音
 * @Date: 2025-09-08 17:21:49
 * @LastEditTime: 2025-10-30 19:21:46
 * @LastEditors: 沐音
 */
package repository

import "context"

// WorkStarRepository 定义了作品收藏数据仓库的接口。
type WorkStarRepository interface {
	// Star 创建收藏记录；依赖 (work_id, user_id) 唯一索引，
	// 重复收藏返回 constant.ErrAlreadyStarred。
	Star(ctx context.Context, workDBID, userDBID uint) error

	// Unstar 取消收藏，不存在时为空操作
	Unstar(ctx context.Context, workDBID, userDBID uint) error

	// IsStarred 查询用户是否已收藏该作品
	IsStarred(ctx context.Context, workDBID, userDBID uint) (bool, error)

	// CountByWork 统计作品的收藏数
	CountByWork(ctx context.Context, workDBID uint) (int64, error)

	// WorkIDsWithStars 返回所有存在收藏记录的作品ID（用于定时对账任务）
	WorkIDsWithStars(ctx context.Context) ([]uint, error)
}
