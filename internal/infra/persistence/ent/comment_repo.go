/*
 * @Description: 作品评论仓储实现
 * @Author: 沐音
 * @Date: 2025-09-08 17:40:29
 * @LastEditTime: 2025-11-12 20:05:37
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/muselink-c/muselink-app/ent"
	"github.com/muselink-c/muselink-app/ent/comment"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

type commentRepo struct {
	db *ent.Client
}

// NewCommentRepo 是 commentRepo 的构造函数。
func NewCommentRepo(db *ent.Client) repository.CommentRepository {
	return &commentRepo{db: db}
}

// toModel 负责将 ent.Comment 实体转换为 model.Comment 领域模型。
func (r *commentRepo) toModel(c *ent.Comment) *model.Comment {
	if c == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(c.ID, idgen.EntityTypeComment)
	if err != nil {
		log.Printf("[严重错误] 生成评论公共ID失败: dbID=%d, error=%v", c.ID, err)
		return nil
	}

	workPublicID, _ := idgen.GeneratePublicID(c.WorkID, idgen.EntityTypeWork)
	userPublicID, _ := idgen.GeneratePublicID(c.UserID, idgen.EntityTypeUser)

	m := &model.Comment{
		ID:        publicID,
		DBID:      c.ID,
		WorkID:    workPublicID,
		UserID:    userPublicID,
		Content:   c.Content,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}

	if c.ParentID != nil {
		parentPublicID, _ := idgen.GeneratePublicID(*c.ParentID, idgen.EntityTypeComment)
		m.ParentID = parentPublicID
	}
	if c.Edges.Author != nil {
		m.UserNickname = c.Edges.Author.Nickname
		m.UserAvatar = c.Edges.Author.Avatar
	}

	return m
}

// Create 创建评论
func (r *commentRepo) Create(ctx context.Context, params *model.CreateCommentParams) (*model.Comment, error) {
	creator := r.db.Comment.Create().
		SetWorkID(params.WorkDBID).
		SetUserID(params.UserDBID).
		SetContent(params.Content)

	if params.ParentDBID != nil {
		creator.SetParentID(*params.ParentDBID)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	return r.toModel(entity), nil
}

// FindByID 根据内部ID查找评论
func (r *commentRepo) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	entity, err := r.db.Comment.Query().
		Where(
			comment.ID(id),
			comment.DeletedAtIsNil(),
		).
		WithAuthor().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
		}
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	return r.toModel(entity), nil
}

// ListByWork 分页获取作品的顶级评论（含直接回复），最新在前
func (r *commentRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.Comment, int64, error) {
	// 顶级评论分页
	query := r.db.Comment.Query().
		Where(
			comment.WorkIDEQ(workDBID),
			comment.ParentIDIsNil(),
			comment.StatusEQ(model.CommentStatusNormal),
			comment.DeletedAtIsNil(),
		)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询评论总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(comment.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithAuthor().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询评论列表失败: %w", err)
	}

	items := make([]model.Comment, 0, len(entities))
	parentIDs := make([]uint, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, *m)
			parentIDs = append(parentIDs, entity.ID)
		}
	}

	// 一次性取回这一页所有顶级评论的直接回复，避免 N+1 查询
	if len(parentIDs) > 0 {
		children, err := r.db.Comment.Query().
			Where(
				comment.ParentIDIn(parentIDs...),
				comment.StatusEQ(model.CommentStatusNormal),
				comment.DeletedAtIsNil(),
			).
			Order(ent.Asc(comment.FieldCreatedAt)).
			WithAuthor().
			All(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("查询回复列表失败: %w", err)
		}

		childrenByParent := make(map[uint][]model.Comment)
		for _, child := range children {
			if m := r.toModel(child); m != nil {
				childrenByParent[*child.ParentID] = append(childrenByParent[*child.ParentID], *m)
			}
		}
		for i := range items {
			dbID := items[i].DBID
			items[i].Children = childrenByParent[dbID]
			items[i].ChildrenCount = len(childrenByParent[dbID])
		}
	}

	return items, int64(total), nil
}

// Delete 软删除评论
func (r *commentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.Comment.DeleteOneID(id).Exec(ctx)
}
