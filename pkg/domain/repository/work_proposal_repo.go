/*
 * @Description: 协作提案仓储接口
 * @Author: 沐音
 * @Date: 2025-09-05 16:15:30
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package repository

import (
	"context"

	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// WorkProposalRepository 定义了协作提案数据仓库的接口。
type WorkProposalRepository interface {
	// Create 创建处于 pending 状态的提案。
	// 必须与版本记录的创建处于同一事务，保证版本与提案 1:1 成对出现。
	Create(ctx context.Context, params *model.CreateWorkProposalParams) (*model.WorkProposal, error)

	// FindByID 根据内部ID查找提案
	FindByID(ctx context.Context, id uint) (*model.WorkProposal, error)

	// DecideIfPending 以 status = pending 为前置条件，原子地把提案状态置为
	// approved 或 rejected，并写入审核者、审核时间与审核意见。
	// 条件更新影响0行时返回 constant.ErrProposalReviewed ——
	// 这是并发审核竞争的判负信号，输掉的一方必须让事务回滚。
	DecideIfPending(ctx context.Context, id uint, params *model.ReviewParams) error

	// ListByWork 分页获取作品的提案列表，最新在前
	ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkProposal, int64, error)
}
