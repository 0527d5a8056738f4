package collaboration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// ---------- 测试替身 ----------

type fakeWorkRepo struct {
	works         map[uint]*model.Work
	canonicalPath string
	canonicalSize int64
	canonicalSet  bool
}

func (f *fakeWorkRepo) Create(ctx context.Context, params *model.CreateWorkParams) (*model.Work, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeWorkRepo) FindByID(ctx context.Context, id uint) (*model.Work, error) {
	w, ok := f.works[id]
	if !ok {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkRepo) Update(ctx context.Context, id uint, params *model.UpdateWorkParams) (*model.Work, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeWorkRepo) UpdateCanonicalFile(ctx context.Context, id uint, filePath string, fileSize int64) error {
	w, ok := f.works[id]
	if !ok {
		return constant.ErrNotFound
	}
	w.FilePath = filePath
	w.FileSize = fileSize
	f.canonicalPath = filePath
	f.canonicalSize = fileSize
	f.canonicalSet = true
	return nil
}

func (f *fakeWorkRepo) Delete(ctx context.Context, id uint) error { return nil }

func (f *fakeWorkRepo) ListByUser(ctx context.Context, userDBID uint, page, pageSize int) ([]model.WorkListItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeWorkRepo) ListLatest(ctx context.Context, page, pageSize int) ([]model.WorkListItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeWorkRepo) IncrementPlayCount(ctx context.Context, id uint, delta int64) error { return nil }
func (f *fakeWorkRepo) SetStarCount(ctx context.Context, id uint, count int64) error       { return nil }

type fakeVersionRepo struct {
	nextDBID  uint
	versions  map[uint]*model.WorkVersion
	createErr error
}

func newFakeVersionRepo() *fakeVersionRepo {
	return &fakeVersionRepo{nextDBID: 1, versions: map[uint]*model.WorkVersion{}}
}

func (f *fakeVersionRepo) Create(ctx context.Context, params *model.CreateWorkVersionParams) (*model.WorkVersion, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	// 模拟 (work_id, version) 唯一索引
	for _, v := range f.versions {
		if v.WorkID == fmt.Sprint(params.WorkDBID) && v.Version == params.Version {
			return nil, constant.ErrConflict
		}
	}
	dbID := f.nextDBID
	f.nextDBID++
	publicID, _ := idgen.GeneratePublicID(dbID, idgen.EntityTypeWorkVersion)
	submitterID, _ := idgen.GeneratePublicID(params.SubmitterDBID, idgen.EntityTypeUser)
	v := &model.WorkVersion{
		ID:             publicID,
		DBID:           dbID,
		WorkID:         fmt.Sprint(params.WorkDBID),
		Version:        params.Version,
		SubmitterID:    submitterID,
		CommitMessage:  params.CommitMessage,
		ChangesSummary: params.ChangesSummary,
		FilePath:       params.FilePath,
		FileSize:       params.FileSize,
		CreatedAt:      time.Now(),
	}
	f.versions[dbID] = v
	cp := *v
	return &cp, nil
}

func (f *fakeVersionRepo) FindByID(ctx context.Context, id uint) (*model.WorkVersion, error) {
	v, ok := f.versions[id]
	if !ok {
		return nil, fmt.Errorf("%w: 版本不存在", constant.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVersionRepo) GetLatestVersion(ctx context.Context, workDBID uint) (int, error) {
	latest := 0
	for _, v := range f.versions {
		if v.WorkID == fmt.Sprint(workDBID) && v.Version > latest {
			latest = v.Version
		}
	}
	return latest, nil
}

func (f *fakeVersionRepo) MarkMerged(ctx context.Context, id uint, mergedBy uint, mergedAt time.Time) error {
	v, ok := f.versions[id]
	if !ok {
		return constant.ErrNotFound
	}
	if v.IsMerged {
		return constant.ErrVersionMerged
	}
	v.IsMerged = true
	v.MergedAt = &mergedAt
	mergedByID, _ := idgen.GeneratePublicID(mergedBy, idgen.EntityTypeUser)
	v.MergedBy = mergedByID
	return nil
}

func (f *fakeVersionRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkVersion, int64, error) {
	var out []model.WorkVersion
	for _, v := range f.versions {
		if v.WorkID == fmt.Sprint(workDBID) {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

type fakeProposalRepo struct {
	nextDBID  uint
	proposals map[uint]*model.WorkProposal
	workIDs   map[uint]uint // proposal dbid -> work dbid
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{nextDBID: 1, proposals: map[uint]*model.WorkProposal{}, workIDs: map[uint]uint{}}
}

func (f *fakeProposalRepo) Create(ctx context.Context, params *model.CreateWorkProposalParams) (*model.WorkProposal, error) {
	dbID := f.nextDBID
	f.nextDBID++
	publicID, _ := idgen.GeneratePublicID(dbID, idgen.EntityTypeWorkProposal)
	workID, _ := idgen.GeneratePublicID(params.WorkDBID, idgen.EntityTypeWork)
	versionID, _ := idgen.GeneratePublicID(params.VersionDBID, idgen.EntityTypeWorkVersion)
	requesterID, _ := idgen.GeneratePublicID(params.RequesterDBID, idgen.EntityTypeUser)
	p := &model.WorkProposal{
		ID:          publicID,
		DBID:        dbID,
		WorkID:      workID,
		VersionID:   versionID,
		VersionDBID: params.VersionDBID,
		RequesterID: requesterID,
		Title:       params.Title,
		Description: params.Description,
		Status:      model.ProposalStatusPending,
		CreatedAt:   time.Now(),
	}
	f.proposals[dbID] = p
	f.workIDs[dbID] = params.WorkDBID
	cp := *p
	return &cp, nil
}

func (f *fakeProposalRepo) FindByID(ctx context.Context, id uint) (*model.WorkProposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return nil, fmt.Errorf("%w: 提案不存在", constant.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProposalRepo) DecideIfPending(ctx context.Context, id uint, params *model.ReviewParams) error {
	p, ok := f.proposals[id]
	if !ok {
		return constant.ErrNotFound
	}
	if p.Status != model.ProposalStatusPending {
		return constant.ErrProposalReviewed
	}
	if params.Decision == model.ReviewDecisionApprove {
		p.Status = model.ProposalStatusApproved
	} else {
		p.Status = model.ProposalStatusRejected
	}
	reviewerID, _ := idgen.GeneratePublicID(params.ReviewerDBID, idgen.EntityTypeUser)
	p.ReviewedBy = reviewerID
	now := time.Now()
	p.ReviewedAt = &now
	p.ReviewComment = params.ReviewComment
	return nil
}

func (f *fakeProposalRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.WorkProposal, int64, error) {
	var out []model.WorkProposal
	for dbID, p := range f.proposals {
		if f.workIDs[dbID] == workDBID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

type fakeUserRepo struct {
	users map[uint]*model.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error       { return nil }
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error) {
	out := make(map[uint]*model.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}
func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uint) error { return nil }

// fakeTxManager 把仓储原样传给业务函数；fn 返回错误时模拟回滚副作用由各测试自行断言。
type fakeTxManager struct {
	repos repository.Repositories
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(f.repos)
}

type fakeStorage struct {
	uploads   []string
	deleted   []string
	uploadErr error
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, objectKey string) (*storage.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, objectKey)
	return &storage.UploadResult{Source: objectKey, Size: int64(len(data)), MimeType: "audio/midi"}, nil
}

func (f *fakeStorage) Get(ctx context.Context, source string) (io.ReadCloser, error) {
	return nil, storage.ErrFeatureNotSupported
}

func (f *fakeStorage) Stream(ctx context.Context, source string, writer io.Writer) error {
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, sources []string) error {
	f.deleted = append(f.deleted, sources...)
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, source string, options storage.DownloadURLOptions) (string, error) {
	return "", storage.ErrFeatureNotSupported
}

func (f *fakeStorage) IsExist(ctx context.Context, source string) (bool, error) { return true, nil }

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]storage.FileInfo, error) {
	return nil, nil
}

// ---------- 测试脚手架 ----------

type fixture struct {
	svc          Service
	workRepo     *fakeWorkRepo
	versionRepo  *fakeVersionRepo
	proposalRepo *fakeProposalRepo
	store        *fakeStorage
	workPublicID string
}

const (
	ownerDBID     = uint(1)
	submitterDBID = uint(2)
	workDBID      = uint(10)
)

func newFixture(t *testing.T, allowCollaboration bool) *fixture {
	t.Helper()

	workPublicID, err := idgen.GeneratePublicID(workDBID, idgen.EntityTypeWork)
	if err != nil {
		t.Fatalf("生成作品公共ID失败: %v", err)
	}
	ownerID, _ := idgen.GeneratePublicID(ownerDBID, idgen.EntityTypeUser)

	workRepo := &fakeWorkRepo{works: map[uint]*model.Work{
		workDBID: {
			ID:                 workPublicID,
			DBID:               workDBID,
			OwnerID:            ownerID,
			OwnerDBID:          ownerDBID,
			Title:              "月光奏鸣曲改编",
			FilePath:           "works/canonical/original.mid",
			FileSize:           2048,
			AllowCollaboration: allowCollaboration,
			Status:             model.WorkStatusPublished,
		},
	}}
	versionRepo := newFakeVersionRepo()
	proposalRepo := newFakeProposalRepo()
	userRepo := &fakeUserRepo{users: map[uint]*model.User{
		ownerDBID:     {ID: ownerDBID, Nickname: "作者"},
		submitterDBID: {ID: submitterDBID, Nickname: "协作者"},
	}}
	store := &fakeStorage{}
	tx := &fakeTxManager{repos: repository.Repositories{
		User:         userRepo,
		Work:         workRepo,
		WorkVersion:  versionRepo,
		WorkProposal: proposalRepo,
	}}

	return &fixture{
		svc:          NewService(workRepo, versionRepo, proposalRepo, userRepo, tx, store),
		workRepo:     workRepo,
		versionRepo:  versionRepo,
		proposalRepo: proposalRepo,
		store:        store,
		workPublicID: workPublicID,
	}
}

func validInput() *SubmitVersionInput {
	return &SubmitVersionInput{
		Title:         "改进第二乐章",
		Description:   "调整了力度标记",
		CommitMessage: "重写第二乐章的左手声部",
		File:          bytes.NewReader([]byte("MThd fake midi data")),
		FileName:      "second-movement.mid",
		FileSize:      19,
	}
}

// ---------- SubmitVersion ----------

func TestSubmitVersion(t *testing.T) {
	t.Run("成功提交后生成版本和待审提案", func(t *testing.T) {
		fx := newFixture(t, true)

		result, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
		if err != nil {
			t.Fatalf("SubmitVersion() error = %v", err)
		}
		if result.Proposal == nil {
			t.Fatal("期望返回提案")
		}
		if result.Proposal.Status != model.ProposalStatusPending {
			t.Errorf("提案状态 = %q, want %q", result.Proposal.Status, model.ProposalStatusPending)
		}
		if result.VersionLabel != "v1.1" {
			t.Errorf("版本标签 = %q, want %q", result.VersionLabel, "v1.1")
		}
		if len(fx.store.uploads) != 1 {
			t.Fatalf("期望上传1个文件，实际 %d", len(fx.store.uploads))
		}
		if !strings.HasPrefix(fx.store.uploads[0], fmt.Sprintf("works/%d/versions/", workDBID)) {
			t.Errorf("上传对象键 = %q，前缀不符合预期", fx.store.uploads[0])
		}
	})

	t.Run("版本号严格单调递增", func(t *testing.T) {
		fx := newFixture(t, true)

		for want := 1; want <= 3; want++ {
			result, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
			if err != nil {
				t.Fatalf("第 %d 次 SubmitVersion() error = %v", want, err)
			}
			if got := result.VersionLabel; got != fmt.Sprintf("v1.%d", want) {
				t.Errorf("第 %d 次提交的版本标签 = %q, want v1.%d", want, got, want)
			}
		}
	})

	t.Run("所有者不能对自己的作品发起提案", func(t *testing.T) {
		fx := newFixture(t, true)

		_, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, ownerDBID, validInput())
		if !errors.Is(err, constant.ErrOwnWorkProposal) {
			t.Errorf("error = %v, want ErrOwnWorkProposal", err)
		}
		if len(fx.store.uploads) != 0 {
			t.Error("鉴权失败时不应上传文件")
		}
	})

	t.Run("未开启协作的作品拒绝提交", func(t *testing.T) {
		fx := newFixture(t, false)

		_, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
		if !errors.Is(err, constant.ErrCollaborationDisabled) {
			t.Errorf("error = %v, want ErrCollaborationDisabled", err)
		}
	})

	t.Run("作品ID无效按不存在处理", func(t *testing.T) {
		fx := newFixture(t, true)

		_, err := fx.svc.SubmitVersion(context.Background(), "not-a-real-id", submitterDBID, validInput())
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("事务失败时回收已上传的文件", func(t *testing.T) {
		fx := newFixture(t, true)
		fx.versionRepo.createErr = errors.New("数据库写入失败")

		_, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
		if err == nil {
			t.Fatal("期望事务错误")
		}
		if len(fx.store.deleted) != 1 {
			t.Fatalf("期望回收1个文件，实际 %d", len(fx.store.deleted))
		}
		if fx.store.deleted[0] != fx.store.uploads[0] {
			t.Errorf("回收的文件 = %q，与上传的 %q 不一致", fx.store.deleted[0], fx.store.uploads[0])
		}
	})
}

func TestSubmitVersionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitVersionInput)
	}{
		{
			name:   "缺少文件",
			mutate: func(in *SubmitVersionInput) { in.File = nil },
		},
		{
			name:   "非MIDI扩展名",
			mutate: func(in *SubmitVersionInput) { in.FileName = "song.mp3" },
		},
		{
			name:   "文件超过大小上限",
			mutate: func(in *SubmitVersionInput) { in.FileSize = MaxVersionFileSize + 1 },
		},
		{
			name:   "空文件",
			mutate: func(in *SubmitVersionInput) { in.FileSize = 0 },
		},
		{
			name:   "标题为空",
			mutate: func(in *SubmitVersionInput) { in.Title = "   " },
		},
		{
			name:   "提交说明为空",
			mutate: func(in *SubmitVersionInput) { in.CommitMessage = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, true)
			input := validInput()
			tt.mutate(input)

			_, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, input)
			if !errors.Is(err, constant.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
			if len(fx.store.uploads) != 0 {
				t.Error("校验失败时不应上传文件")
			}
		})
	}
}

// ---------- Review ----------

// submitOne 提交一个版本并返回提案公共ID。
func submitOne(t *testing.T, fx *fixture) string {
	t.Helper()
	result, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
	if err != nil {
		t.Fatalf("准备提案失败: %v", err)
	}
	return result.Proposal.ID
}

func TestReview(t *testing.T) {
	t.Run("批准后版本合并且作品权威文件被改写", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		reviewed, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionApprove, ReviewComment: "很好的改进"})
		if err != nil {
			t.Fatalf("Review() error = %v", err)
		}
		if reviewed.Status != model.ProposalStatusApproved {
			t.Errorf("提案状态 = %q, want approved", reviewed.Status)
		}
		if reviewed.ReviewComment != "很好的改进" {
			t.Errorf("审核意见 = %q", reviewed.ReviewComment)
		}

		version := fx.versionRepo.versions[1]
		if !version.IsMerged {
			t.Error("批准后版本应被标记为已合并")
		}
		if !fx.workRepo.canonicalSet {
			t.Fatal("批准后应改写作品的权威文件引用")
		}
		if fx.workRepo.canonicalPath != version.FilePath {
			t.Errorf("权威文件 = %q, want %q", fx.workRepo.canonicalPath, version.FilePath)
		}
		if fx.workRepo.canonicalSize != version.FileSize {
			t.Errorf("权威文件大小 = %d, want %d", fx.workRepo.canonicalSize, version.FileSize)
		}
	})

	t.Run("驳回不触碰版本和作品文件", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		reviewed, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionReject, ReviewComment: "与整体风格不符"})
		if err != nil {
			t.Fatalf("Review() error = %v", err)
		}
		if reviewed.Status != model.ProposalStatusRejected {
			t.Errorf("提案状态 = %q, want rejected", reviewed.Status)
		}
		if fx.versionRepo.versions[1].IsMerged {
			t.Error("驳回不应合并版本")
		}
		if fx.workRepo.canonicalSet {
			t.Error("驳回不应改写作品的权威文件")
		}
	})

	t.Run("重复审核返回冲突", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		if _, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionReject, ReviewComment: "暂不合并"}); err != nil {
			t.Fatalf("首次审核失败: %v", err)
		}
		first := *fx.proposalRepo.proposals[1]

		_, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionApprove, ReviewComment: "改主意了"})
		if !errors.Is(err, constant.ErrProposalReviewed) {
			t.Errorf("error = %v, want ErrProposalReviewed", err)
		}
		// 第二次审核输掉竞争，批准分支的副作用不能发生
		if fx.versionRepo.versions[1].IsMerged {
			t.Error("判负的审核不应合并版本")
		}
		// 提案上保留的必须是首次审核的裁决、审核人和时间
		after := fx.proposalRepo.proposals[1]
		if after.Status != model.ProposalStatusRejected {
			t.Errorf("提案状态 = %q, 应保持首次审核的 rejected", after.Status)
		}
		if after.ReviewedBy != first.ReviewedBy {
			t.Errorf("审核人 = %q, 应保持首次审核的 %q", after.ReviewedBy, first.ReviewedBy)
		}
		if after.ReviewedAt == nil || !after.ReviewedAt.Equal(*first.ReviewedAt) {
			t.Errorf("审核时间 = %v, 应保持首次审核的 %v", after.ReviewedAt, first.ReviewedAt)
		}
		if after.ReviewComment != "暂不合并" {
			t.Errorf("审核意见 = %q, 应保持首次审核的意见", after.ReviewComment)
		}
	})

	t.Run("关闭协作后已有提案仍可审核", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		// 所有者随后关闭协作开关
		fx.workRepo.works[workDBID].AllowCollaboration = false

		// 新的提交被拒绝
		_, err := fx.svc.SubmitVersion(context.Background(), fx.workPublicID, submitterDBID, validInput())
		if !errors.Is(err, constant.ErrCollaborationDisabled) {
			t.Errorf("error = %v, want ErrCollaborationDisabled", err)
		}

		// 已有的待审提案不受影响，仍可被裁决并合并
		reviewed, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionApprove})
		if err != nil {
			t.Fatalf("Review() error = %v", err)
		}
		if reviewed.Status != model.ProposalStatusApproved {
			t.Errorf("提案状态 = %q, want approved", reviewed.Status)
		}
		if !fx.versionRepo.versions[1].IsMerged {
			t.Error("批准后版本应被标记为已合并")
		}
	})

	t.Run("非所有者无权审核", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		_, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, submitterDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionApprove})
		if !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})

	t.Run("非法审核决定被拒绝", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		_, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: "merge"})
		if !errors.Is(err, constant.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("提案不属于该作品时按不存在处理", func(t *testing.T) {
		fx := newFixture(t, true)
		proposalID := submitOne(t, fx)

		// 另一个同样属于 owner 的作品
		otherWorkDBID := uint(11)
		otherPublicID, _ := idgen.GeneratePublicID(otherWorkDBID, idgen.EntityTypeWork)
		ownerID, _ := idgen.GeneratePublicID(ownerDBID, idgen.EntityTypeUser)
		fx.workRepo.works[otherWorkDBID] = &model.Work{
			ID:                 otherPublicID,
			DBID:               otherWorkDBID,
			OwnerID:            ownerID,
			OwnerDBID:          ownerDBID,
			AllowCollaboration: true,
			Status:             model.WorkStatusPublished,
		}

		_, err := fx.svc.Review(context.Background(), otherPublicID, proposalID, ownerDBID,
			&model.ReviewParams{Decision: model.ReviewDecisionApprove})
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

// ---------- 列表与访问控制 ----------

func TestListVersions(t *testing.T) {
	t.Run("补齐提交者昵称", func(t *testing.T) {
		fx := newFixture(t, true)
		submitOne(t, fx)

		resp, err := fx.svc.ListVersions(context.Background(), fx.workPublicID, 0, 1, 10)
		if err != nil {
			t.Fatalf("ListVersions() error = %v", err)
		}
		if resp.Total != 1 {
			t.Fatalf("Total = %d, want 1", resp.Total)
		}
		if resp.List[0].SubmitterName != "协作者" {
			t.Errorf("SubmitterName = %q, want 协作者", resp.List[0].SubmitterName)
		}
	})

	t.Run("私有作品对陌生人不可见", func(t *testing.T) {
		fx := newFixture(t, true)
		fx.workRepo.works[workDBID].Status = model.WorkStatusPrivate

		_, err := fx.svc.ListVersions(context.Background(), fx.workPublicID, 99, 1, 10)
		if !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})
}

func TestListProposals(t *testing.T) {
	fx := newFixture(t, true)
	proposalID := submitOne(t, fx)
	if _, err := fx.svc.Review(context.Background(), fx.workPublicID, proposalID, ownerDBID,
		&model.ReviewParams{Decision: model.ReviewDecisionApprove}); err != nil {
		t.Fatalf("审核失败: %v", err)
	}

	resp, err := fx.svc.ListProposals(context.Background(), fx.workPublicID, 0, 1, 10)
	if err != nil {
		t.Fatalf("ListProposals() error = %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	p := resp.List[0]
	if p.RequesterName != "协作者" {
		t.Errorf("RequesterName = %q, want 协作者", p.RequesterName)
	}
	if p.ReviewerName != "作者" {
		t.Errorf("ReviewerName = %q, want 作者", p.ReviewerName)
	}
}

func TestCheckViewAccess(t *testing.T) {
	svc := &service{}

	tests := []struct {
		name     string
		work     *model.Work
		viewer   uint
		expected bool
	}{
		{
			name:     "所有者永远可见",
			work:     &model.Work{OwnerDBID: 1, Status: model.WorkStatusPrivate},
			viewer:   1,
			expected: true,
		},
		{
			name:     "公开且开启协作的作品对所有人可见",
			work:     &model.Work{OwnerDBID: 1, Status: model.WorkStatusPublished, AllowCollaboration: true},
			viewer:   0,
			expected: true,
		},
		{
			name:     "公开但关闭协作的作品不可见",
			work:     &model.Work{OwnerDBID: 1, Status: model.WorkStatusPublished, AllowCollaboration: false},
			viewer:   2,
			expected: false,
		},
		{
			name:     "私有作品对陌生人不可见",
			work:     &model.Work{OwnerDBID: 1, Status: model.WorkStatusPrivate, AllowCollaboration: true},
			viewer:   2,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CheckViewAccess(tt.work, tt.viewer); got != tt.expected {
				t.Errorf("CheckViewAccess() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVersionLabel(t *testing.T) {
	v := &model.WorkVersion{Version: 7}
	if got := v.Label(); got != "v1.7" {
		t.Errorf("Label() = %q, want v1.7", got)
	}
}
