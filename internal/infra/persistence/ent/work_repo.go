/*
 * @Description: 音乐作品仓储实现
 * @Author: 沐音
 * @Date: 2025-09-03 14:28:50
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/muselink-c/muselink-app/ent"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

type workRepo struct {
	db *ent.Client
}

// NewWorkRepo 是 workRepo 的构造函数。
func NewWorkRepo(db *ent.Client) repository.WorkRepository {
	return &workRepo{db: db}
}

// toModel 负责将 ent.Work 实体转换为 model.Work 领域模型。
func (r *workRepo) toModel(w *ent.Work) *model.Work {
	if w == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(w.ID, idgen.EntityTypeWork)
	if err != nil {
		log.Printf("[严重错误] 生成作品公共ID失败: dbID=%d, error=%v", w.ID, err)
		return nil
	}

	ownerPublicID, err := idgen.GeneratePublicID(w.UserID, idgen.EntityTypeUser)
	if err != nil {
		log.Printf("[严重错误] 生成用户公共ID失败: dbID=%d, error=%v", w.UserID, err)
		return nil
	}

	m := &model.Work{
		ID:                 publicID,
		DBID:               w.ID,
		OwnerID:            ownerPublicID,
		OwnerDBID:          w.UserID,
		Title:              w.Title,
		Description:        w.Description,
		Genre:              w.Genre,
		FilePath:           w.FilePath,
		FileSize:           w.FileSize,
		AllowCollaboration: w.AllowCollaboration,
		PlayCount:          w.PlayCount,
		StarCount:          w.StarCount,
		Status:             w.Status,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
	if w.Edges.Owner != nil {
		m.OwnerNickname = w.Edges.Owner.Nickname
	}
	return m
}

// toListItem 转换为列表项
func (r *workRepo) toListItem(w *ent.Work) model.WorkListItem {
	publicID, _ := idgen.GeneratePublicID(w.ID, idgen.EntityTypeWork)
	ownerPublicID, _ := idgen.GeneratePublicID(w.UserID, idgen.EntityTypeUser)

	item := model.WorkListItem{
		ID:        publicID,
		Title:     w.Title,
		Genre:     w.Genre,
		OwnerID:   ownerPublicID,
		PlayCount: w.PlayCount,
		StarCount: w.StarCount,
		CreatedAt: w.CreatedAt,
	}
	if w.Edges.Owner != nil {
		item.OwnerNickname = w.Edges.Owner.Nickname
	}
	return item
}

// Create 创建作品
func (r *workRepo) Create(ctx context.Context, params *model.CreateWorkParams) (*model.Work, error) {
	entity, err := r.db.Work.Create().
		SetUserID(params.OwnerDBID).
		SetTitle(params.Title).
		SetDescription(params.Description).
		SetGenre(params.Genre).
		SetFilePath(params.FilePath).
		SetFileSize(params.FileSize).
		SetAllowCollaboration(params.AllowCollaboration).
		SetStatus(params.Status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建作品失败: %w", err)
	}

	log.Printf("[WorkRepo] 创建作品成功: ID=%d, 标题=%s", entity.ID, entity.Title)
	return r.toModel(entity), nil
}

// FindByID 根据内部ID查找作品
func (r *workRepo) FindByID(ctx context.Context, id uint) (*model.Work, error) {
	entity, err := r.db.Work.Query().
		Where(
			work.ID(id),
			work.DeletedAtIsNil(),
		).
		WithOwner().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
		}
		return nil, fmt.Errorf("查询作品失败: %w", err)
	}
	return r.toModel(entity), nil
}

// Update 按参数更新作品元信息（nil 字段不修改）
func (r *workRepo) Update(ctx context.Context, id uint, params *model.UpdateWorkParams) (*model.Work, error) {
	updater := r.db.Work.UpdateOneID(id)
	if params.Title != nil {
		updater.SetTitle(*params.Title)
	}
	if params.Description != nil {
		updater.SetDescription(*params.Description)
	}
	if params.Genre != nil {
		updater.SetGenre(*params.Genre)
	}
	if params.AllowCollaboration != nil {
		updater.SetAllowCollaboration(*params.AllowCollaboration)
	}
	if params.Status != nil {
		updater.SetStatus(*params.Status)
	}

	entity, err := updater.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
		}
		return nil, fmt.Errorf("更新作品失败: %w", err)
	}
	return r.toModel(entity), nil
}

// UpdateCanonicalFile 改写作品的权威文件引用与大小。
// 只允许合并协调逻辑在审批事务内调用。
func (r *workRepo) UpdateCanonicalFile(ctx context.Context, id uint, filePath string, fileSize int64) error {
	_, err := r.db.Work.UpdateOneID(id).
		SetFilePath(filePath).
		SetFileSize(fileSize).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
		}
		return fmt.Errorf("%w: 更新作品权威文件失败: %v", constant.ErrStorageFailure, err)
	}
	return nil
}

// Delete 软删除作品
func (r *workRepo) Delete(ctx context.Context, id uint) error {
	return r.db.Work.DeleteOneID(id).Exec(ctx)
}

// ListByUser 分页查询某用户的作品
func (r *workRepo) ListByUser(ctx context.Context, userDBID uint, page, pageSize int) ([]model.WorkListItem, int64, error) {
	query := r.db.Work.Query().
		Where(
			work.UserIDEQ(userDBID),
			work.DeletedAtIsNil(),
		)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询作品总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(work.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithOwner().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询作品列表失败: %w", err)
	}

	items := make([]model.WorkListItem, len(entities))
	for i, entity := range entities {
		items[i] = r.toListItem(entity)
	}
	return items, int64(total), nil
}

// ListLatest 分页查询最新公开作品
func (r *workRepo) ListLatest(ctx context.Context, page, pageSize int) ([]model.WorkListItem, int64, error) {
	query := r.db.Work.Query().
		Where(
			work.StatusEQ(model.WorkStatusPublished),
			work.DeletedAtIsNil(),
		)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询作品总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(work.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithOwner().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询作品列表失败: %w", err)
	}

	items := make([]model.WorkListItem, len(entities))
	for i, entity := range entities {
		items[i] = r.toListItem(entity)
	}
	return items, int64(total), nil
}

// IncrementPlayCount 将作品播放数增加 delta
func (r *workRepo) IncrementPlayCount(ctx context.Context, id uint, delta int64) error {
	return r.db.Work.UpdateOneID(id).
		AddPlayCount(delta).
		Exec(ctx)
}

// SetStarCount 重置作品收藏数
func (r *workRepo) SetStarCount(ctx context.Context, id uint, count int64) error {
	return r.db.Work.UpdateOneID(id).
		SetStarCount(count).
		Exec(ctx)
}
