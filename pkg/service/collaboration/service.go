/*
 * @Description: 协作核心服务：版本提交、提案审核、历史查询
 * @Author: 沐音
 * @Date: 2025-09-16 10:22:40
 * @LastEditTime: 2026-01-08 17:33:25
 * @LastEditors: 沐音
 */
package collaboration

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

// MaxVersionFileSize 限制单个协作版本文件的大小（10 MB）。
const MaxVersionFileSize = 10 << 20

// SubmitVersionInput 是提交协作版本时网关校验后的载荷。
type SubmitVersionInput struct {
	Title          string
	Description    string
	CommitMessage  string
	ChangesSummary string
	File           io.Reader
	FileName       string
	FileSize       int64
}

// Service 定义了协作工作流的业务接口。
// 提交与审核是整个平台的核心路径：两者的所有数据库写入
// 都必须收敛到 TransactionManager.Do 的单个事务里。
type Service interface {
	// SubmitVersion 提交一个协作版本并创建待审核提案
	SubmitVersion(ctx context.Context, workPublicID string, requesterDBID uint, input *SubmitVersionInput) (*model.SubmitVersionResult, error)
	// Review 审核提案；approve 时在同一事务内完成版本合并
	Review(ctx context.Context, workPublicID, proposalPublicID string, reviewerDBID uint, params *model.ReviewParams) (*model.WorkProposal, error)
	// ListVersions 获取作品的历史版本（最新在前）
	ListVersions(ctx context.Context, workPublicID string, viewerDBID uint, page, pageSize int) (*model.WorkVersionListResponse, error)
	// ListProposals 获取作品的提案列表（最新在前）
	ListProposals(ctx context.Context, workPublicID string, viewerDBID uint, page, pageSize int) (*model.WorkProposalListResponse, error)
	// CheckViewAccess 判断访问者能否查看该作品的协作历史
	CheckViewAccess(work *model.Work, viewerDBID uint) bool
}

type service struct {
	workRepo     repository.WorkRepository
	versionRepo  repository.WorkVersionRepository
	proposalRepo repository.WorkProposalRepository
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
	storage      storage.IStorageProvider
}

// NewService 是协作服务的构造函数。
func NewService(
	workRepo repository.WorkRepository,
	versionRepo repository.WorkVersionRepository,
	proposalRepo repository.WorkProposalRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	storageProvider storage.IStorageProvider,
) Service {
	return &service{
		workRepo:     workRepo,
		versionRepo:  versionRepo,
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		storage:      storageProvider,
	}
}

// validateSubmitInput 是协作网关的入口校验。
func validateSubmitInput(input *SubmitVersionInput) error {
	if input == nil || input.File == nil {
		return fmt.Errorf("%w: 缺少上传文件", constant.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if ext != ".mid" && ext != ".midi" {
		return fmt.Errorf("%w: 仅支持 .mid/.midi 文件", constant.ErrValidation)
	}
	if input.FileSize <= 0 || input.FileSize > MaxVersionFileSize {
		return fmt.Errorf("%w: 文件大小必须在 0-10MB 之间", constant.ErrValidation)
	}
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: 提案标题不能为空", constant.ErrValidation)
	}
	if strings.TrimSpace(input.CommitMessage) == "" {
		return fmt.Errorf("%w: 提交说明不能为空", constant.ErrValidation)
	}
	return nil
}

// SubmitVersion 提交一个协作版本。
// 文件先落存储，数据库写入（版本号递增、版本记录、pending 提案）
// 全部在一个事务里完成；事务失败时尽力回收已上传的文件。
func (s *service) SubmitVersion(ctx context.Context, workPublicID string, requesterDBID uint, input *SubmitVersionInput) (*model.SubmitVersionResult, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}

	work, err := s.workRepo.FindByID(ctx, workDBID)
	if err != nil {
		return nil, err
	}
	if !work.AllowCollaboration {
		return nil, constant.ErrCollaborationDisabled
	}
	if work.OwnerDBID == requesterDBID {
		return nil, constant.ErrOwnWorkProposal
	}

	ext := strings.ToLower(filepath.Ext(input.FileName))
	objectKey := fmt.Sprintf("works/%d/versions/%s%s", workDBID, uuid.NewString(), ext)
	uploadResult, err := s.storage.Upload(ctx, input.File, objectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: 保存版本文件失败: %v", constant.ErrStorageFailure, err)
	}

	var createdVersion *model.WorkVersion
	var createdProposal *model.WorkProposal

	txErr := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		latest, err := repos.WorkVersion.GetLatestVersion(ctx, workDBID)
		if err != nil {
			return err
		}

		// 版本号在事务内取 max+1，(work_id, version) 唯一索引兜底并发撞号
		version, err := repos.WorkVersion.Create(ctx, &model.CreateWorkVersionParams{
			WorkDBID:       workDBID,
			Version:        latest + 1,
			SubmitterDBID:  requesterDBID,
			CommitMessage:  input.CommitMessage,
			ChangesSummary: input.ChangesSummary,
			FilePath:       uploadResult.Source,
			FileSize:       uploadResult.Size,
		})
		if err != nil {
			return err
		}

		proposal, err := repos.WorkProposal.Create(ctx, &model.CreateWorkProposalParams{
			WorkDBID:      workDBID,
			VersionDBID:   version.DBID,
			RequesterDBID: requesterDBID,
			Title:         input.Title,
			Description:   input.Description,
		})
		if err != nil {
			return err
		}

		createdVersion = version
		createdProposal = proposal
		return nil
	})
	if txErr != nil {
		// 事务已回滚，回收孤儿文件（失败时交给清理任务兜底）
		if delErr := s.storage.Delete(ctx, []string{uploadResult.Source}); delErr != nil {
			log.Printf("[CollaborationService] 回收版本文件失败: source=%s, err=%v", uploadResult.Source, delErr)
		}
		return nil, txErr
	}

	log.Printf("[CollaborationService] 协作提案已创建: work=%s, version=%s, proposal=%s",
		workPublicID, createdVersion.Label(), createdProposal.ID)

	return &model.SubmitVersionResult{
		Proposal:     createdProposal,
		VersionID:    createdVersion.ID,
		VersionLabel: createdVersion.Label(),
	}, nil
}

// Review 审核提案。
// 提案状态翻转以 pending 为前置条件原子落定；approve 分支在同一事务内
// 标记版本合并并改写作品的权威文件引用。任何一步失败整体回滚。
func (s *service) Review(ctx context.Context, workPublicID, proposalPublicID string, reviewerDBID uint, params *model.ReviewParams) (*model.WorkProposal, error) {
	if params.Decision != model.ReviewDecisionApprove && params.Decision != model.ReviewDecisionReject {
		return nil, fmt.Errorf("%w: 审核决定必须是 approve 或 reject", constant.ErrValidation)
	}

	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	proposalDBID, err := idgen.DecodePublicIDWithType(proposalPublicID, idgen.EntityTypeWorkProposal)
	if err != nil {
		return nil, fmt.Errorf("%w: 提案不存在", constant.ErrNotFound)
	}

	work, err := s.workRepo.FindByID(ctx, workDBID)
	if err != nil {
		return nil, err
	}
	if work.OwnerDBID != reviewerDBID {
		return nil, fmt.Errorf("%w: 只有作品所有者可以审核提案", constant.ErrForbidden)
	}

	proposal, err := s.proposalRepo.FindByID(ctx, proposalDBID)
	if err != nil {
		return nil, err
	}
	if proposal.WorkID != work.ID {
		// 提案不属于该作品，按不存在处理，避免跨作品探测
		return nil, fmt.Errorf("%w: 提案不存在", constant.ErrNotFound)
	}

	reviewParams := &model.ReviewParams{
		ReviewerDBID:  reviewerDBID,
		Decision:      params.Decision,
		ReviewComment: params.ReviewComment,
	}

	txErr := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		// CAS：pending → 终态，并发审核只有一方能赢
		if err := repos.WorkProposal.DecideIfPending(ctx, proposalDBID, reviewParams); err != nil {
			return err
		}

		if params.Decision != model.ReviewDecisionApprove {
			return nil
		}

		// 合并协调：版本标记 + 作品权威文件改写，与状态翻转同生共死
		version, err := repos.WorkVersion.FindByID(ctx, proposal.VersionDBID)
		if err != nil {
			return err
		}
		if err := repos.WorkVersion.MarkMerged(ctx, version.DBID, reviewerDBID, time.Now()); err != nil {
			return err
		}
		return repos.Work.UpdateCanonicalFile(ctx, workDBID, version.FilePath, version.FileSize)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("[CollaborationService] 提案审核完成: proposal=%s, decision=%s, reviewer=%d",
		proposalPublicID, params.Decision, reviewerDBID)

	return s.proposalRepo.FindByID(ctx, proposalDBID)
}

// CheckViewAccess 判断访问者能否查看作品的协作历史。
// 所有者永远可见；其他人要求作品公开且开启协作。
func (s *service) CheckViewAccess(work *model.Work, viewerDBID uint) bool {
	if viewerDBID != 0 && work.OwnerDBID == viewerDBID {
		return true
	}
	return work.Status == model.WorkStatusPublished && work.AllowCollaboration
}

// loadWorkForView 解析公共ID并做协作历史的查看鉴权。
func (s *service) loadWorkForView(ctx context.Context, workPublicID string, viewerDBID uint) (*model.Work, error) {
	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	work, err := s.workRepo.FindByID(ctx, workDBID)
	if err != nil {
		return nil, err
	}
	if !s.CheckViewAccess(work, viewerDBID) {
		return nil, fmt.Errorf("%w: 无权查看该作品的协作历史", constant.ErrForbidden)
	}
	return work, nil
}

// ListVersions 获取作品的历史版本，最新提交在前。
func (s *service) ListVersions(ctx context.Context, workPublicID string, viewerDBID uint, page, pageSize int) (*model.WorkVersionListResponse, error) {
	work, err := s.loadWorkForView(ctx, workPublicID, viewerDBID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	versions, total, err := s.versionRepo.ListByWork(ctx, work.DBID, page, pageSize)
	if err != nil {
		return nil, err
	}

	// 批量补齐提交者昵称
	submitterIDs := make([]uint, 0, len(versions))
	for _, v := range versions {
		if dbID, _, err := idgen.DecodePublicID(v.SubmitterID); err == nil {
			submitterIDs = append(submitterIDs, dbID)
		}
	}
	users, err := s.userRepo.FindByIDs(ctx, submitterIDs)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if dbID, _, err := idgen.DecodePublicID(versions[i].SubmitterID); err == nil {
			if u, ok := users[dbID]; ok {
				versions[i].SubmitterName = u.Nickname
			}
		}
	}

	return &model.WorkVersionListResponse{
		List:     versions,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListProposals 获取作品的提案列表，最新在前。
func (s *service) ListProposals(ctx context.Context, workPublicID string, viewerDBID uint, page, pageSize int) (*model.WorkProposalListResponse, error) {
	work, err := s.loadWorkForView(ctx, workPublicID, viewerDBID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	proposals, total, err := s.proposalRepo.ListByWork(ctx, work.DBID, page, pageSize)
	if err != nil {
		return nil, err
	}

	// 批量补齐发起人与审核人昵称
	userIDs := make([]uint, 0, len(proposals)*2)
	for _, p := range proposals {
		if dbID, _, err := idgen.DecodePublicID(p.RequesterID); err == nil {
			userIDs = append(userIDs, dbID)
		}
		if p.ReviewedBy != "" {
			if dbID, _, err := idgen.DecodePublicID(p.ReviewedBy); err == nil {
				userIDs = append(userIDs, dbID)
			}
		}
	}
	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for i := range proposals {
		if dbID, _, err := idgen.DecodePublicID(proposals[i].RequesterID); err == nil {
			if u, ok := users[dbID]; ok {
				proposals[i].RequesterName = u.Nickname
			}
		}
		if proposals[i].ReviewedBy != "" {
			if dbID, _, err := idgen.DecodePublicID(proposals[i].ReviewedBy); err == nil {
				if u, ok := users[dbID]; ok {
					proposals[i].ReviewerName = u.Nickname
				}
			}
		}
	}

	return &model.WorkProposalListResponse{
		List:     proposals,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// normalizePage 统一分页参数的默认值与上限。
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
