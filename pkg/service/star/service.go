/*
 * @Description: 作品收藏服务
 * @Author: 沐音
 * @Date: 2025-09-17 15:10:52
 * @LastEditTime: 2025-12-10 11:26:40
 * @LastEditors: 沐音
 */
package star

import (
	"context"
	"fmt"
	"log"

	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

// Service 定义了收藏相关的业务接口。
type Service interface {
	// Star 收藏作品，重复收藏返回冲突
	Star(ctx context.Context, userDBID uint, workPublicID string) error
	// Unstar 取消收藏，未收藏时为空操作
	Unstar(ctx context.Context, userDBID uint, workPublicID string) error
	// IsStarred 查询当前用户是否已收藏
	IsStarred(ctx context.Context, userDBID uint, workPublicID string) (bool, error)
	// ReconcileStarCounts 以收藏表为准重算所有作品的收藏数（定时任务调用）
	ReconcileStarCounts(ctx context.Context) error
}

type service struct {
	starRepo repository.WorkStarRepository
	workRepo repository.WorkRepository
}

// NewService 是收藏服务的构造函数。
func NewService(starRepo repository.WorkStarRepository, workRepo repository.WorkRepository) Service {
	return &service{
		starRepo: starRepo,
		workRepo: workRepo,
	}
}

// loadVisibleWork 加载作品并确认对该用户可见。
func (s *service) loadVisibleWork(ctx context.Context, workPublicID string, userDBID uint) (*model.Work, error) {
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
	return work, nil
}

// Star 收藏作品。唯一索引保证幂等，重复收藏报冲突。
func (s *service) Star(ctx context.Context, userDBID uint, workPublicID string) error {
	work, err := s.loadVisibleWork(ctx, workPublicID, userDBID)
	if err != nil {
		return err
	}
	if err := s.starRepo.Star(ctx, work.DBID, userDBID); err != nil {
		return err
	}
	s.refreshStarCount(ctx, work.DBID)
	return nil
}

// Unstar 取消收藏。
func (s *service) Unstar(ctx context.Context, userDBID uint, workPublicID string) error {
	work, err := s.loadVisibleWork(ctx, workPublicID, userDBID)
	if err != nil {
		return err
	}
	if err := s.starRepo.Unstar(ctx, work.DBID, userDBID); err != nil {
		return err
	}
	s.refreshStarCount(ctx, work.DBID)
	return nil
}

// IsStarred 查询当前用户是否已收藏。
func (s *service) IsStarred(ctx context.Context, userDBID uint, workPublicID string) (bool, error) {
	work, err := s.loadVisibleWork(ctx, workPublicID, userDBID)
	if err != nil {
		return false, err
	}
	return s.starRepo.IsStarred(ctx, work.DBID, userDBID)
}

// refreshStarCount 以收藏表为准刷新作品上的冗余计数，失败只记日志。
func (s *service) refreshStarCount(ctx context.Context, workDBID uint) {
	count, err := s.starRepo.CountByWork(ctx, workDBID)
	if err != nil {
		log.Printf("[StarService] 统计收藏数失败: workID=%d, err=%v", workDBID, err)
		return
	}
	if err := s.workRepo.SetStarCount(ctx, workDBID, count); err != nil {
		log.Printf("[StarService] 刷新收藏数失败: workID=%d, err=%v", workDBID, err)
	}
}

// ReconcileStarCounts 以收藏表为准重算所有有收藏记录的作品计数。
// 兜底即时刷新失败造成的漂移。
func (s *service) ReconcileStarCounts(ctx context.Context) error {
	workIDs, err := s.starRepo.WorkIDsWithStars(ctx)
	if err != nil {
		return err
	}
	for _, workID := range workIDs {
		s.refreshStarCount(ctx, workID)
	}
	if len(workIDs) > 0 {
		log.Printf("[StarService] 收藏计数对账完成: %d 个作品", len(workIDs))
	}
	return nil
}
