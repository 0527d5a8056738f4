/*
 * @Description: 作品历史版本仓储实现
 * @Author: 沐音
 * @Date: 2025-09-05 18:10:26
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
	"github.com/muselink-c/muselink-app/ent/workversion"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

type workVersionRepo struct {
	db *ent.Client
}

// NewWorkVersionRepo 是 workVersionRepo 的构造函数。
func NewWorkVersionRepo(db *ent.Client) repository.WorkVersionRepository {
	return &workVersionRepo{db: db}
}

// toModel 负责将 ent.WorkVersion 实体转换为 model.WorkVersion 领域模型。
func (r *workVersionRepo) toModel(v *ent.WorkVersion) *model.WorkVersion {
	if v == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(v.ID, idgen.EntityTypeWorkVersion)
	if err != nil {
		log.Printf("[严重错误] 生成版本公共ID失败: dbID=%d, error=%v", v.ID, err)
		return nil
	}

	workPublicID, _ := idgen.GeneratePublicID(v.WorkID, idgen.EntityTypeWork)
	submitterPublicID, _ := idgen.GeneratePublicID(v.UserID, idgen.EntityTypeUser)

	m := &model.WorkVersion{
		ID:             publicID,
		DBID:           v.ID,
		WorkID:         workPublicID,
		Version:        v.Version,
		SubmitterID:    submitterPublicID,
		CommitMessage:  v.CommitMessage,
		ChangesSummary: v.ChangesSummary,
		FilePath:       v.FilePath,
		FileSize:       v.FileSize,
		IsMerged:       v.IsMerged,
		MergedAt:       v.MergedAt,
		CreatedAt:      v.CreatedAt,
	}

	if v.MergedBy != nil {
		mergedByPublicID, _ := idgen.GeneratePublicID(*v.MergedBy, idgen.EntityTypeUser)
		m.MergedBy = mergedByPublicID
	}

	// 预加载的提案信息（用于版本列表展示关联提案状态）
	if v.Edges.Proposal != nil {
		proposalPublicID, _ := idgen.GeneratePublicID(v.Edges.Proposal.ID, idgen.EntityTypeWorkProposal)
		m.ProposalID = proposalPublicID
		m.ProposalStatus = string(v.Edges.Proposal.Status)
	}

	return m
}

// Create 追加一条版本记录
func (r *workVersionRepo) Create(ctx context.Context, params *model.CreateWorkVersionParams) (*model.WorkVersion, error) {
	entity, err := r.db.WorkVersion.Create().
		SetWorkID(params.WorkDBID).
		SetVersion(params.Version).
		SetUserID(params.SubmitterDBID).
		SetCommitMessage(params.CommitMessage).
		SetChangesSummary(params.ChangesSummary).
		SetFilePath(params.FilePath).
		SetFileSize(params.FileSize).
		Save(ctx)
	if err != nil {
		// (work_id, version) 唯一索引兜底：并发提交撞号时报冲突，由调用方重试
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 版本号已被占用", constant.ErrConflict)
		}
		return nil, fmt.Errorf("%w: 创建版本记录失败: %v", constant.ErrStorageFailure, err)
	}

	log.Printf("[WorkVersionRepo] 追加版本成功: 作品ID=%d, 版本=%d", params.WorkDBID, params.Version)
	return r.toModel(entity), nil
}

// FindByID 根据内部ID查找版本
func (r *workVersionRepo) FindByID(ctx context.Context, id uint) (*model.WorkVersion, error) {
	entity, err := r.db.WorkVersion.Query().
		Where(workversion.ID(id)).
		WithProposal().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
		}
		return nil, fmt.Errorf("查询版本失败: %w", err)
	}
	return r.toModel(entity), nil
}

// GetLatestVersion 获取作品当前最大的版本号，没有版本时返回0
func (r *workVersionRepo) GetLatestVersion(ctx context.Context, workDBID uint) (int, error) {
	entity, err := r.db.WorkVersion.Query().
		Where(workversion.WorkIDEQ(workDBID)).
		Order(ent.Desc(workversion.FieldVersion)).
		Select(workversion.FieldVersion).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("查询最新版本号失败: %w", err)
	}
	return entity.Version, nil
}

// MarkMerged 将版本一次性标记为已合并。
// 条件更新以 is_merged = false 为前置，影响0行说明版本已被合并过，
// 返回 ErrVersionMerged 让整个审批事务回滚。
func (r *workVersionRepo) MarkMerged(ctx context.Context, id uint, mergedBy uint, mergedAt time.Time) error {
	affected, err := r.db.WorkVersion.Update().
		Where(
			workversion.IDEQ(id),
			workversion.IsMergedEQ(false),
		).
		SetIsMerged(true).
		SetMergedBy(mergedBy).
		SetMergedAt(mergedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: 标记版本合并失败: %v", constant.ErrStorageFailure, err)
	}
	if affected == 0 {
		// 区分"不存在"与"已合并"
		exists, exErr := r.db.WorkVersion.Query().
			Where(workversion.IDEQ(id)).
			Exist(ctx)
		if exErr != nil {
			return fmt.Errorf("%w: 查询版本失败: %v", constant.ErrStorageFailure, exErr)
		}
		if !exists {
			return fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
		}
		return constant.ErrVersionMerged
	}

	log.Printf("[WorkVersionRepo] 版本已标记合并: versionID=%d, mergedBy=%d", id, mergedBy)
	return nil
}

// ListByWork 分页获取作品的版本列表，最新提交在前
func (r *workVersionRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkVersion, int64, error) {
	query := r.db.WorkVersion.Query().
		Where(workversion.WorkIDEQ(workDBID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询版本总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(workversion.FieldVersion)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithProposal(func(q *ent.WorkProposalQuery) {
			q.Select(workproposal.FieldID, workproposal.FieldStatus)
		}).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询版本列表失败: %w", err)
	}

	items := make([]model.WorkVersion, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, *m)
		}
	}
	return items, int64(total), nil
}
