/*
 * @Description: 音乐作品服务：上传、元信息维护、播放计数
 * @Author: 沐音
 * @Date: 2025-09-15 14:50:26
 * @LastEditTime: 2026-01-08 17:33:25
 * @LastEditors: 沐音
 */
package work

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
	"github.com/muselink-c/muselink-app/pkg/service/utility"
)

// MaxWorkFileSize 限制作品 MIDI 文件的大小（10 MB）。
const MaxWorkFileSize = 10 << 20

// 播放计数的缓存键。计数先在缓存累积，由定时任务批量刷回数据库。
const (
	playCountKeyPrefix    = "muselink:play:count:"
	playVisitorsKeyPrefix = "muselink:play:visitors:"
	playVisitorsTTL       = 24 * time.Hour
)

// CreateWorkInput 创建作品的输入载荷。
type CreateWorkInput struct {
	Title              string
	Description        string
	Genre              string
	AllowCollaboration bool
	Status             int
	File               io.Reader
	FileName           string
	FileSize           int64
}

// Service 定义了作品相关的业务接口。
type Service interface {
	Create(ctx context.Context, ownerDBID uint, input *CreateWorkInput) (*model.Work, error)
	Get(ctx context.Context, workPublicID string, viewerDBID uint) (*model.Work, error)
	Update(ctx context.Context, workPublicID string, operatorDBID uint, params *model.UpdateWorkParams) (*model.Work, error)
	Delete(ctx context.Context, workPublicID string, operatorDBID uint) error
	ListLatest(ctx context.Context, page, pageSize int) (*model.WorkListResponse, error)
	ListByUser(ctx context.Context, userPublicID string, page, pageSize int) (*model.WorkListResponse, error)
	// GetDownloadURL 为作品的权威文件生成临时下载链接
	GetDownloadURL(ctx context.Context, workPublicID string, viewerDBID uint) (string, error)
	// StreamCanonical 将作品的权威文件流式写出。签名校验由调用方完成
	StreamCanonical(ctx context.Context, workPublicID string, writer io.Writer) error
	// RecordPlay 记录一次播放。同一访问者24小时内只计一次
	RecordPlay(ctx context.Context, workPublicID, visitorKey string) error
	// FlushPlayCounts 将缓存中累积的播放计数批量刷回数据库（定时任务调用）
	FlushPlayCounts(ctx context.Context) error
}

type service struct {
	workRepo repository.WorkRepository
	storage  storage.IStorageProvider
	cacheSvc utility.CacheService
}

// NewService 是作品服务的构造函数。
func NewService(
	workRepo repository.WorkRepository,
	storageProvider storage.IStorageProvider,
	cacheSvc utility.CacheService,
) Service {
	return &service{
		workRepo: workRepo,
		storage:  storageProvider,
		cacheSvc: cacheSvc,
	}
}

// validateCreateInput 校验作品上传载荷。
func validateCreateInput(input *CreateWorkInput) error {
	if input == nil || input.File == nil {
		return fmt.Errorf("%w: 缺少上传文件", constant.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if ext != ".mid" && ext != ".midi" {
		return fmt.Errorf("%w: 仅支持 .mid/.midi 文件", constant.ErrValidation)
	}
	if input.FileSize <= 0 || input.FileSize > MaxWorkFileSize {
		return fmt.Errorf("%w: 文件大小必须在 0-10MB 之间", constant.ErrValidation)
	}
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: 作品标题不能为空", constant.ErrValidation)
	}
	if input.Status != model.WorkStatusPublished && input.Status != model.WorkStatusPrivate {
		return fmt.Errorf("%w: 无效的作品状态", constant.ErrValidation)
	}
	return nil
}

// Create 上传文件并创建作品记录。
func (s *service) Create(ctx context.Context, ownerDBID uint, input *CreateWorkInput) (*model.Work, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(input.FileName))
	objectKey := fmt.Sprintf("works/canonical/%s%s", uuid.NewString(), ext)
	uploadResult, err := s.storage.Upload(ctx, input.File, objectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: 保存作品文件失败: %v", constant.ErrStorageFailure, err)
	}

	work, err := s.workRepo.Create(ctx, &model.CreateWorkParams{
		OwnerDBID:          ownerDBID,
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		Genre:              input.Genre,
		FilePath:           uploadResult.Source,
		FileSize:           uploadResult.Size,
		AllowCollaboration: input.AllowCollaboration,
		Status:             input.Status,
	})
	if err != nil {
		// 建档失败，回收已上传的文件
		if delErr := s.storage.Delete(ctx, []string{uploadResult.Source}); delErr != nil {
			log.Printf("[WorkService] 回收作品文件失败: source=%s, err=%v", uploadResult.Source, delErr)
		}
		return nil, err
	}

	return work, nil
}

// loadWork 解析公共ID并加载作品。
func (s *service) loadWork(ctx context.Context, workPublicID string) (*model.Work, error) {
	workDBID, err := idgen.DecodePublicIDWithType(workPublicID, idgen.EntityTypeWork)
	if err != nil {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	return s.workRepo.FindByID(ctx, workDBID)
}

// Get 获取作品详情。私有作品仅所有者可见。
func (s *service) Get(ctx context.Context, workPublicID string, viewerDBID uint) (*model.Work, error) {
	work, err := s.loadWork(ctx, workPublicID)
	if err != nil {
		return nil, err
	}
	if work.Status == model.WorkStatusPrivate && work.OwnerDBID != viewerDBID {
		// 私有作品对外按不存在处理
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	return work, nil
}

// Update 更新作品元信息，仅所有者可操作。
func (s *service) Update(ctx context.Context, workPublicID string, operatorDBID uint, params *model.UpdateWorkParams) (*model.Work, error) {
	work, err := s.loadWork(ctx, workPublicID)
	if err != nil {
		return nil, err
	}
	if work.OwnerDBID != operatorDBID {
		return nil, fmt.Errorf("%w: 只有作品所有者可以修改作品", constant.ErrForbidden)
	}
	if params.Status != nil && *params.Status != model.WorkStatusPublished && *params.Status != model.WorkStatusPrivate {
		return nil, fmt.Errorf("%w: 无效的作品状态", constant.ErrValidation)
	}
	return s.workRepo.Update(ctx, work.DBID, params)
}

// Delete 软删除作品，仅所有者可操作。物理文件由清理任务处理。
func (s *service) Delete(ctx context.Context, workPublicID string, operatorDBID uint) error {
	work, err := s.loadWork(ctx, workPublicID)
	if err != nil {
		return err
	}
	if work.OwnerDBID != operatorDBID {
		return fmt.Errorf("%w: 只有作品所有者可以删除作品", constant.ErrForbidden)
	}
	return s.workRepo.Delete(ctx, work.DBID)
}

// ListLatest 获取最新公开作品列表。
func (s *service) ListLatest(ctx context.Context, page, pageSize int) (*model.WorkListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.workRepo.ListLatest(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &model.WorkListResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListByUser 获取某用户的作品列表。
func (s *service) ListByUser(ctx context.Context, userPublicID string, page, pageSize int) (*model.WorkListResponse, error) {
	userDBID, err := idgen.DecodePublicIDWithType(userPublicID, idgen.EntityTypeUser)
	if err != nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrNotFound)
	}
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.workRepo.ListByUser(ctx, userDBID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &model.WorkListResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetDownloadURL 为作品的权威文件生成临时下载链接。
func (s *service) GetDownloadURL(ctx context.Context, workPublicID string, viewerDBID uint) (string, error) {
	work, err := s.Get(ctx, workPublicID, viewerDBID)
	if err != nil {
		return "", err
	}
	return s.storage.GetDownloadURL(ctx, work.FilePath, storage.DownloadURLOptions{
		PublicID: work.ID,
	})
}

// StreamCanonical 将作品的权威文件流式写出。
// 私有作品的访问控制由签名链接承担，这里不再做身份校验。
func (s *service) StreamCanonical(ctx context.Context, workPublicID string, writer io.Writer) error {
	work, err := s.loadWork(ctx, workPublicID)
	if err != nil {
		return err
	}
	return s.storage.Stream(ctx, work.FilePath, writer)
}

// RecordPlay 记录一次播放。
// 以访问者标识做 24 小时去重，计数在缓存里累积，不直接写库。
func (s *service) RecordPlay(ctx context.Context, workPublicID, visitorKey string) error {
	work, err := s.loadWork(ctx, workPublicID)
	if err != nil {
		return err
	}
	if work.Status != model.WorkStatusPublished {
		return fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}

	visitorsKey := playVisitorsKeyPrefix + strconv.FormatUint(uint64(work.DBID), 10)
	added, err := s.cacheSvc.SAdd(ctx, visitorsKey, visitorKey)
	if err != nil {
		return fmt.Errorf("记录播放访问者失败: %w", err)
	}
	if added == 0 {
		// 24小时内的重复播放不计数
		return nil
	}
	if err := s.cacheSvc.Expire(ctx, visitorsKey, playVisitorsTTL); err != nil {
		log.Printf("[WorkService] 设置播放去重集过期失败: key=%s, err=%v", visitorsKey, err)
	}

	countKey := playCountKeyPrefix + strconv.FormatUint(uint64(work.DBID), 10)
	if _, err := s.cacheSvc.Increment(ctx, countKey); err != nil {
		return fmt.Errorf("累积播放计数失败: %w", err)
	}
	return nil
}

// FlushPlayCounts 将缓存中累积的播放计数批量刷回数据库。
func (s *service) FlushPlayCounts(ctx context.Context) error {
	keys, err := s.cacheSvc.Scan(ctx, playCountKeyPrefix+"*")
	if err != nil {
		return fmt.Errorf("扫描播放计数键失败: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	counts, err := s.cacheSvc.GetAndDeleteMany(ctx, keys)
	if err != nil {
		return fmt.Errorf("读取播放计数失败: %w", err)
	}

	var flushed int
	for key, count := range counts {
		if count <= 0 {
			continue
		}
		idStr := strings.TrimPrefix(key, playCountKeyPrefix)
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			log.Printf("[WorkService] 无法解析播放计数键: key=%s, err=%v", key, err)
			continue
		}
		if err := s.workRepo.IncrementPlayCount(ctx, uint(id), int64(count)); err != nil {
			log.Printf("[WorkService] 刷新播放计数失败: workID=%d, delta=%d, err=%v", id, count, err)
			continue
		}
		flushed++
	}

	if flushed > 0 {
		log.Printf("[WorkService] 播放计数已刷库: %d 个作品", flushed)
	}
	return nil
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
