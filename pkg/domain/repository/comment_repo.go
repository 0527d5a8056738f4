/*
 * @Description: 作品评论仓储接口
 * @Author: 沐音
 * @Date: 2025-09-08 17:05:14
 * @LastEditTime: 2025-11-12 20:05:37
 * @LastEditors: 沐音
 */
package repository

import (
	"context"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// CommentRepository 定义了作品评论数据仓库的接口。
type CommentRepository interface {
	// Create 创建评论
	Create(ctx context.Context, params *model.CreateCommentParams) (*model.Comment, error)

	// FindByID 根据内部ID查找评论
	FindByID(ctx context.Context, id uint) (*model.Comment, error)

	// ListByWork 分页获取作品的顶级评论（含直接回复），最新在前
	ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.Comment, int64, error)

	// Delete 软删除评论
	Delete(ctx context.Context, id uint) error
}
