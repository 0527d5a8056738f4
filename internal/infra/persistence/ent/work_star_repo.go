/*
 * @Description: 作品收藏仓储实现
 * @Author: 沐音
 * @Date: 2025-09-08 18:02:13
 * @LastEditTime: 2025-10-30 19:21:46
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"fmt"

	"github.com/muselink-c/muselink-app/ent"
	"github.com/muselink-c/muselink-app/ent/workstar"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
)

type workStarRepo struct {
	db *ent.Client
}

// NewWorkStarRepo 是 workStarRepo 的构造函数。
func NewWorkStarRepo(db *ent.Client) repository.WorkStarRepository {
	return &workStarRepo{db: db}
}

// Star 创建收藏记录，重复收藏由唯一索引拦截
func (r *workStarRepo) Star(ctx context.Context, workDBID, userDBID uint) error {
	err := r.db.WorkStar.Create().
		SetWorkID(workDBID).
		SetUserID(userDBID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return constant.ErrAlreadyStarred
		}
		return fmt.Errorf("创建收藏记录失败: %w", err)
	}
	return nil
}

// Unstar 取消收藏，不存在时为空操作
func (r *workStarRepo) Unstar(ctx context.Context, workDBID, userDBID uint) error {
	_, err := r.db.WorkStar.Delete().
		Where(
			workstar.WorkIDEQ(workDBID),
			workstar.UserIDEQ(userDBID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("取消收藏失败: %w", err)
	}
	return nil
}

// IsStarred 查询用户是否已收藏该作品
func (r *workStarRepo) IsStarred(ctx context.Context, workDBID, userDBID uint) (bool, error) {
	return r.db.WorkStar.Query().
		Where(
			workstar.WorkIDEQ(workDBID),
			workstar.UserIDEQ(userDBID),
		).
		Exist(ctx)
}

// CountByWork 统计作品的收藏数
func (r *workStarRepo) CountByWork(ctx context.Context, workDBID uint) (int64, error) {
	count, err := r.db.WorkStar.Query().
		Where(workstar.WorkIDEQ(workDBID)).
		Count(ctx)
	return int64(count), err
}

// WorkIDsWithStars 返回所有存在收藏记录的作品ID
func (r *workStarRepo) WorkIDsWithStars(ctx context.Context) ([]uint, error) {
	var result []struct {
		WorkID uint `json:"work_id"`
	}

	err := r.db.WorkStar.Query().
		GroupBy(workstar.FieldWorkID).
		Scan(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("查询有收藏记录的作品ID失败: %w", err)
	}

	workIDs := make([]uint, len(result))
	for i, r := range result {
		workIDs[i] = r.WorkID
	}
	return workIDs, nil
}
