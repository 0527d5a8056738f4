/*
 * @Description: 作品评论服务
 * @Author: 沐音
 * @Date: 2025-09-17 09:42:15
 * @LastEditTime: 2025-12-10 11:26:40
 * @LastEditors: 沐音
 */
package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

// MaxCommentLength 限制单条评论的长度。
const MaxCommentLength = 1000

// Service 定义了评论相关的业务接口。
type Service interface {
	// Create 发表评论。parentPublicID 为空表示顶级评论
	Create(ctx context.Context, userDBID uint, workPublicID, parentPublicID, content string) (*model.Comment, error)
	// ListByWork 分页获取作品的评论（顶级 + 直接回复）
	ListByWork(ctx context.Context, workPublicID string, page, pageSize int) (*model.CommentListResponse, error)
	// Delete 删除评论，仅评论作者或作品所有者可操作
	Delete(ctx context.Context, commentPublicID string, operatorDBID uint) error
}

type service struct {
	commentRepo repository.CommentRepository
	workRepo    repository.WorkRepository
	sanitizer   *bluemonday.Policy
}

// NewService 是评论服务的构造函数。
// 评论内容只允许纯文本，所有 HTML 标签一律剥离。
func NewService(commentRepo repository.CommentRepository, workRepo repository.WorkRepository) Service {
	return &service{
		commentRepo: commentRepo,
		workRepo:    workRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// Create 发表评论。
func (s *service) Create(ctx context.Context, userDBID uint, workPublicID, parentPublicID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if content == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", constant.ErrValidation)
	}
	if len([]rune(content)) > MaxCommentLength {
		return nil, fmt.Errorf("%w: 评论内容不能超过 %d 字", constant.ErrValidation, MaxCommentLength)
	}

	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	work, err := s.workRepo.FindByID(ctx, workDBID)
	if err != nil {
		return nil, err
	}
	if work.Status == model.WorkStatusPrivate && work.OwnerDBID != userDBID {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}

	params := &model.CreateCommentParams{
		WorkDBID: workDBID,
		UserDBID: userDBID,
		Content:  content,
	}

	if parentPublicID != "" {
		parentDBID, err := idgen.DecodePublicIDWithType(parentPublicID, idgen.EntityTypeComment)
		if err != nil {
			return nil, fmt.Errorf("%w: 父评论不存在", constant.ErrNotFound)
		}
		parent, err := s.commentRepo.FindByID(ctx, parentDBID)
		if err != nil {
			return nil, err
		}
		if parent.WorkID != work.ID {
			return nil, fmt.Errorf("%w: 父评论不属于该作品", constant.ErrBadRequest)
		}
		if parent.ParentID != "" {
			// 只支持一层回复，不允许套娃
			return nil, fmt.Errorf("%w: 仅支持对顶级评论回复", constant.ErrBadRequest)
		}
		params.ParentDBID = &parentDBID
	}

	return s.commentRepo.Create(ctx, params)
}

// ListByWork 分页获取作品的评论。
func (s *service) ListByWork(ctx context.Context, workPublicID string, page, pageSize int) (*model.CommentListResponse, error) {
	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	if _, err := s.workRepo.FindByID(ctx, workDBID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	items, total, err := s.commentRepo.ListByWork(ctx, workDBID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &model.CommentListResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete 删除评论，仅评论作者或作品所有者可操作。
func (s *service) Delete(ctx context.Context, commentPublicID string, operatorDBID uint) error {
	commentDBID, err := idgen.DecodePublicIDWithType(commentPublicID, idgen.EntityTypeComment)
	if err != nil {
		return fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
	}
	cm, err := s.commentRepo.FindByID(ctx, commentDBID)
	if err != nil {
		return err
	}

	operatorPublicID, err := idgen.GeneratePublicID(operatorDBID, idgen.EntityTypeUser)
	if err != nil {
		return constant.ErrInternalServer
	}
	if cm.UserID != operatorPublicID {
		workDBID, err := idgen.DecodePublicIDWithType(cm.WorkID, idgen.EntityTypeWork)
		if err != nil {
			return constant.ErrInternalServer
		}
		work, err := s.workRepo.FindByID(ctx, workDBID)
		if err != nil {
			return err
		}
		if work.OwnerDBID != operatorDBID {
			return fmt.Errorf("%w: 只有评论作者或作品所有者可以删除评论", constant.ErrForbidden)
		}
	}

	return s.commentRepo.Delete(ctx, commentDBID)
}
