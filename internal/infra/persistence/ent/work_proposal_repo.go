/*
 * @Description: 协作提案仓储实现
 * @Author: 沐音
 * @Date: 2025-09-05 18:35:44
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/muselink-c/muselink-app/ent"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

type workProposalRepo struct {
	db *ent.Client
}

// NewWorkProposalRepo 是 workProposalRepo 的构造函数。
func NewWorkProposalRepo(db *ent.Client) repository.WorkProposalRepository {
	return &workProposalRepo{db: db}
}

// toModel 负责将 ent.WorkProposal 实体转换为 model.WorkProposal 领域模型。
func (r *workProposalRepo) toModel(p *ent.WorkProposal) *model.WorkProposal {
	if p == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypeWorkProposal)
	if err != nil {
		log.Printf("[严重错误] 生成提案公共ID失败: dbID=%d, error=%v", p.ID, err)
		return nil
	}

	workPublicID, _ := idgen.GeneratePublicID(p.WorkID, idgen.EntityTypeWork)
	versionPublicID, _ := idgen.GeneratePublicID(p.VersionID, idgen.EntityTypeWorkVersion)
	requesterPublicID, _ := idgen.GeneratePublicID(p.RequesterID, idgen.EntityTypeUser)

	m := &model.WorkProposal{
		ID:            publicID,
		DBID:          p.ID,
		WorkID:        workPublicID,
		VersionID:     versionPublicID,
		VersionDBID:   p.VersionID,
		RequesterID:   requesterPublicID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        string(p.Status),
		ReviewedAt:    p.ReviewedAt,
		ReviewComment: p.ReviewComment,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.ReviewedBy != nil {
		reviewerPublicID, _ := idgen.GeneratePublicID(*p.ReviewedBy, idgen.EntityTypeUser)
		m.ReviewedBy = reviewerPublicID
	}
	if p.Edges.Version != nil {
		m.VersionNumber = p.Edges.Version.Version
	}

	return m
}

// Create 创建处于 pending 状态的提案
func (r *workProposalRepo) Create(ctx context.Context, params *model.CreateWorkProposalParams) (*model.WorkProposal, error) {
	entity, err := r.db.WorkProposal.Create().
		SetWorkID(params.WorkDBID).
		SetVersionID(params.VersionDBID).
		SetRequesterID(params.RequesterDBID).
		SetTitle(params.Title).
		SetDescription(params.Description).
		SetStatus(workproposal.StatusPending).
		Save(ctx)
	if err != nil {
		// version_id 唯一索引保证每个版本至多一个提案
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 该版本已存在提案", constant.ErrConflict)
		}
		return nil, fmt.Errorf("%w: 创建提案失败: %v", constant.ErrStorageFailure, err)
	}

	log.Printf("[WorkProposalRepo] 创建提案成功: 作品ID=%d, 版本ID=%d", params.WorkDBID, params.VersionDBID)
	return r.toModel(entity), nil
}

// FindByID 根据内部ID查找提案
func (r *workProposalRepo) FindByID(ctx context.Context, id uint) (*model.WorkProposal, error) {
	entity, err := r.db.WorkProposal.Query().
		Where(workproposal.ID(id)).
		WithVersion().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 提案不存在", constant.ErrNotFound)
		}
		return nil, fmt.Errorf("查询提案失败: %w", err)
	}
	return r.toModel(entity), nil
}

// DecideIfPending 以 status = pending 为前置条件，原子地落定提案状态。
// 两个并发的审核请求最多只有一个能改到行；输掉的一方拿到
// ErrProposalReviewed，由服务层让整个事务回滚。
func (r *workProposalRepo) DecideIfPending(ctx context.Context, id uint, params *model.ReviewParams) error {
	var newStatus workproposal.Status
	switch params.Decision {
	case model.ReviewDecisionApprove:
		newStatus = workproposal.StatusApproved
	case model.ReviewDecisionReject:
		newStatus = workproposal.StatusRejected
	default:
		return fmt.Errorf("%w: 未知的审核决定 %q", constant.ErrBadRequest, params.Decision)
	}

	affected, err := r.db.WorkProposal.Update().
		Where(
			workproposal.IDEQ(id),
			workproposal.StatusEQ(workproposal.StatusPending),
		).
		SetStatus(newStatus).
		SetReviewedBy(params.ReviewerDBID).
		SetReviewedAt(time.Now()).
		SetReviewComment(params.ReviewComment).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: 更新提案状态失败: %v", constant.ErrStorageFailure, err)
	}
	if affected == 0 {
		exists, exErr := r.db.WorkProposal.Query().
			Where(workproposal.IDEQ(id)).
			Exist(ctx)
		if exErr != nil {
			return fmt.Errorf("%w: 查询提案失败: %v", constant.ErrStorageFailure, exErr)
		}
		if !exists {
			return fmt.Errorf("%w: 提案不存在", constant.ErrNotFound)
		}
		return constant.ErrProposalReviewed
	}

	log.Printf("[WorkProposalRepo] 提案已落定: proposalID=%d, 状态=%s", id, newStatus)
	return nil
}

// ListByWork 分页获取作品的提案列表，最新在前
func (r *workProposalRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkProposal, int64, error) {
	query := r.db.WorkProposal.Query().
		Where(workproposal.WorkIDEQ(workDBID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询提案总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(workproposal.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithVersion().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询提案列表失败: %w", err)
	}

	items := make([]model.WorkProposal, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, *m)
		}
	}
	return items, int64(total), nil
}
